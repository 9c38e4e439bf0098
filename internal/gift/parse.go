package gift

import (
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// Form field prefixes used by the purchase form. Recipients arrive as
// repeated field groups sharing a numeric suffix: the first group has no
// suffix, subsequent groups use 1, 2, 3, …
const (
	fieldEmail   = "recipient_email"
	fieldName    = "recipient_name"
	fieldMessage = "recipientMessage"
)

// ParseRecipients extracts the ordered recipient sequence from a submitted
// form. Order follows the numeric suffix: the unsuffixed group first, then
// ascending indexes. Groups are keyed off the email field — a name or
// message field with no matching email field is ignored.
func ParseRecipients(form url.Values) []Recipient {
	type group struct {
		suffix string
		index  int
	}

	var groups []group
	for key := range form {
		if !strings.HasPrefix(key, fieldEmail) {
			continue
		}
		suffix := strings.TrimPrefix(key, fieldEmail)
		idx := 0
		if suffix != "" {
			n, err := strconv.Atoi(suffix)
			if err != nil {
				continue
			}
			idx = n
		}
		groups = append(groups, group{suffix: suffix, index: idx})
	}

	sort.Slice(groups, func(i, j int) bool { return groups[i].index < groups[j].index })

	recipients := make([]Recipient, 0, len(groups))
	for _, g := range groups {
		recipients = append(recipients, Recipient{
			Email:           form.Get(fieldEmail + g.suffix),
			Name:            form.Get(fieldName + g.suffix),
			PersonalMessage: form.Get(fieldMessage + g.suffix),
		})
	}
	return recipients
}
