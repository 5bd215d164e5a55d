package extract

import (
	"regexp"
	"strings"

	"github.com/aiready/aiready/internal/model"
)

// attributeRule binds one business attribute to its ordered pattern list
// and a setter on the attributes struct. Each pattern must expose the
// attribute value as capture group 1.
type attributeRule struct {
	// name identifies the attribute in logs and tests.
	name string

	// patterns is tried in order; the first match wins and later patterns
	// are never consulted. Order encodes priority, not specificity: a
	// reordering silently changes extraction results.
	patterns []*regexp.Regexp

	// assign writes the matched value into the attributes struct.
	assign func(*model.BusinessAttributes, string)
}

// attributeRules is the full first-match-wins extraction table.
// Unmatched attributes stay empty; that is an expected outcome, not an
// error.
var attributeRules = []attributeRule{
	{
		name: "industry",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)leading (?:provider|platform|company) (?:of|for|in) (?:the )?([a-z][a-z &-]{2,39}?)(?:\.|,| industry| sector)`),
			regexp.MustCompile(`(?i)specialists? in (?:the )?([a-z][a-z &-]{2,39}) (?:industry|sector|market)`),
			regexp.MustCompile(`(?i)we (?:serve|work with) the ([a-z][a-z &-]{2,39}) (?:industry|sector)`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.Industry = v },
	},
	{
		name: "targetAudience",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:built|designed|made) for ([a-z][a-z ,&-]{2,49}?)(?:\.|,| who | that )`),
			regexp.MustCompile(`(?i)helps ([a-z][a-z &-]{2,39}?) (?:to )?(?:grow|save|manage|track|ship|sell)`),
			regexp.MustCompile(`(?i)trusted by ([a-z][a-z ,&-]{2,49}?)(?:\.| worldwide| everywhere| across)`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.TargetAudience = v },
	},
	{
		name: "mainProduct",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?:Introducing|Meet) ([A-Z][\w-]+(?: [A-Z][\w-]+){0,2})`),
			regexp.MustCompile(`(?i)our (?:flagship )?product,? (?:called )?([A-Z][\w-]+(?: [A-Z][\w-]+){0,2})`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.MainProduct = v },
	},
	{
		name: "mainService",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)we (?:provide|offer|deliver) ([a-z][a-z ,&-]{4,59}?)(?:\.| to | for )`),
			regexp.MustCompile(`(?i)services include ([a-z][a-z ,&-]{4,59}?)(?:\.|,? and)`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.MainService = v },
	},
	{
		name: "uniqueValue",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)the (?:only|first) ([^.!?]{10,79})`),
			regexp.MustCompile(`(?i)what (?:sets|makes) us (?:apart|different)(?: is)?[:,]? ([^.!?]{10,79})`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.UniqueValue = v },
	},
	{
		name: "missionStatement",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)our mission is to ([^.!?]{10,119})`),
			regexp.MustCompile(`(?i)we(?:'re| are) on a mission to ([^.!?]{10,119})`),
			regexp.MustCompile(`(?i)mission:\s*([^.!?]{10,119})`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.MissionStatement = v },
	},
	{
		name: "yearFounded",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)(?:founded|established) (?:in )?((?:19|20)\d{2})`),
			regexp.MustCompile(`(?i)since ((?:19|20)\d{2})`),
			regexp.MustCompile(`(?i)est\.? ((?:19|20)\d{2})`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.YearFounded = v },
	},
	{
		name: "location",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)headquartered in ([A-Z][A-Za-z .,'-]{2,39}?)(?:\.|,? (?:and|with)|$)`),
			regexp.MustCompile(`(?i)based in ([A-Z][A-Za-z .,'-]{2,39}?)(?:\.|,? (?:and|with)|$)`),
			regexp.MustCompile(`(?i)offices in ([A-Z][A-Za-z .,'-]{2,39}?)(?:\.|$)`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.Location = v },
	},
	{
		name: "teamSize",
		patterns: []*regexp.Regexp{
			regexp.MustCompile(`(?i)team of (?:over |more than )?(\d{1,5}\+?)(?: people| employees| engineers)?`),
			regexp.MustCompile(`(?i)(\d{1,5}\+?) (?:employees|people) (?:strong|worldwide|globally|and counting)`),
		},
		assign: func(a *model.BusinessAttributes, v string) { a.TeamSize = v },
	},
}

// extractAttributes runs the first-match-wins attribute table over the
// flattened page text. No pattern is re-tried after a hit.
func extractAttributes(text string) model.BusinessAttributes {
	var attrs model.BusinessAttributes
	for _, rule := range attributeRules {
		for _, pattern := range rule.patterns {
			match := pattern.FindStringSubmatch(text)
			if match == nil {
				continue
			}
			value := strings.TrimSpace(strings.Trim(match[1], " ,"))
			if value != "" {
				rule.assign(&attrs, value)
			}
			break
		}
	}
	return attrs
}
