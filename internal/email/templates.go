package email

import (
	"fmt"

	"github.com/shepherd-study/gift-checkout/internal/gift"
)

// logoURL is the hosted Shepherd logo embedded at the top of both emails.
const logoURL = "https://i.ibb.co/yVwQF0z/shepherdlogo.png"

// ConfirmationHTML renders the purchaser confirmation body. Pure function,
// no I/O. Name parameters are interpolated verbatim — nothing is
// HTML-escaped, so treat the output as trusted-input-only markup.
func ConfirmationHTML(purchaserName string, recipientNames []string, referralLink string) string {
	formatted := gift.FormatNames(recipientNames)
	noun := "child"
	if len(recipientNames) > 1 {
		noun = "children"
	}

	return fmt.Sprintf(`<div style="text-align: center; font-family: Arial, sans-serif; color: #333;">

  <div style="margin-bottom: 20px;">
    <img src="%[1]s" alt="Gift Image" style="max-width: 100%%; height: auto; margin-bottom: 20px;" />
  </div>

  <h1 style="font-size: 28px; color: #333; margin-bottom: 20px;">Your Gift Has Been Activated! 🎁</h1>

  <p style="font-size: 18px; margin-bottom: 10px;">Hi <strong>%[2]s</strong>,</p>
  <p style="font-size: 16px; margin-bottom: 20px;">
    Thank you for sponsoring your <strong>%[3]s</strong>, <strong>%[4]s</strong>'s academic success with Shepherd! 🎉 You’ve just given them the ultimate study sidekick to help them excel in school. Here’s a quick reminder of what %[4]s get(s) with their Shepherd subscription:
  </p>

  <ul style=" padding: 0; font-size: 16px; line-height: 1.8; text-align: left; display: inline-block; margin-bottom: 30px;">
    <li> AI-powered note-taking to capture and summarize every class.</li>
    <li> 24/7 AI Tutor for homework help whenever they need it.</li>
    <li> Personalized study plans to keep them on track with their goals.</li>
    <li> Quizzes and flashcards created from their notes to help them study smarter, not harder.</li>
    <li> Intelligent Task List to keep them on track.</li>
  </ul>

  <p style="font-size: 16px; margin-bottom: 20px;">
    We’re thrilled to have <strong>%[4]s</strong> on board and know they’ll love using Shepherd to boost their learning!
  </p>

  <p style="font-size: 16px; margin-bottom: 20px;">
    <strong>Referral Bonus:</strong> If you know other parents who might benefit from Shepherd, share this referral link: <a href="%[5]s" style="color: #007BFF; text-decoration: none;">%[5]s</a>. If 10 parents subscribe through your link, <strong>%[4]s</strong> will get 2 extra months FREE!
  </p>

  <p style="font-size: 16px; margin-bottom: 30px;">
    Thanks again for your support! If you have any questions, feel free to reach out to us at <a href="mailto:gift@shepherd.study" style="color: #007BFF; text-decoration: none;">gift@shepherd.study</a>.
  </p>

  <p style="font-size: 16px; line-height: 1.6;">
    Best regards,<br />
    <strong>The Shepherd Team</strong>
  </p>

</div>
`, logoURL, purchaserName, noun, formatted, referralLink)
}

// WelcomeHTML renders a recipient's onboarding body. The personal-message
// block is included only when the purchaser supplied one. Same escaping
// caveat as ConfirmationHTML.
func WelcomeHTML(recipientName, purchaserName, couponCode, personalMessage string) string {
	messageBlock := ""
	if personalMessage != "" {
		messageBlock = fmt.Sprintf(`<p style="font-size: 16px; font-style: italic; margin-bottom: 20px;">Here’s a special message from them: "%s"</p>`, personalMessage)
	}

	return fmt.Sprintf(`<div style="text-align: center; font-family: Arial, sans-serif; color: #333;">

  <div style="margin-bottom: 20px;">
    <img src="%[1]s" alt="Gift Image" style="max-width: 100%%; height: auto;" />
  </div>

  <h1 style="font-size: 28px; color: #333; margin-bottom: 20px;">You’ve Got a Gift! 🎁</h1>

  <p style="font-size: 18px; margin-bottom: 10px;">Hi <strong>%[2]s</strong>,</p>
  <p style="font-size: 16px; margin-bottom: 20px;">
    Guess what? <strong>%[3]s</strong> has just gifted you a full year of Shepherd—your very own AI-powered study assistant! 🎉
  </p>

  %[4]s

  <p style="font-size: 16px; margin-bottom: 10px;">With Shepherd, you’ll be able to:</p>
  <ul style=" padding: 0; font-size: 16px; line-height: 1.8; text-align: left; display: inline-block; margin-bottom: 30px;">
    <li> Take and summarize notes easily, so you never miss key points.</li>
    <li> Get 24/7 homework help from your personal AI Tutor.</li>
    <li> Create personalized study plans to stay organized and ace your exams.</li>
    <li> Turn your notes into quizzes and flashcards to make studying a breeze.</li>
  </ul>

  <p style="font-size: 16px; margin-bottom: 20px;">
    Your coupon code is: <strong>%[5]s</strong>
  </p>

  <p style="font-size: 16px; margin-bottom: 30px;">
    To get started, just log in here: <a href="https://www.shepherd.study" style="color: #007BFF; text-decoration: none;">www.shepherd.study</a>.
  </p>

  <p style="font-size: 16px; line-height: 1.6;">
    Best of luck with your studies,<br />
    <strong>The Shepherd Team</strong>
  </p>

</div>
`, logoURL, recipientName, purchaserName, messageBlock, couponCode)
}
