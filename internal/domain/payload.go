package domain

import (
	"regexp"
)

// dateRe is the only accepted date shape. "2024-1-5" and "01-05-2024" fail.
var dateRe = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// IsDateString reports whether s matches the yyyy-mm-dd pattern.
func IsDateString(s string) bool { return dateRe.MatchString(s) }

// fieldKind selects the type/format rule applied to a payload field.
type fieldKind int

const (
	kindString fieldKind = iota // non-empty string
	kindDate                    // string matching yyyy-mm-dd
	kindCategory                // member of the category enumeration
	kindStringList              // list of strings
	kindInt                     // integral, non-negative JSON number
	kindBool
)

// payloadRule is one entry of a declarative payload schema. Rules are checked
// in slice order and validation stops at the first failure, so later fields
// are never inspected once an earlier one is invalid.
type payloadRule struct {
	field    string
	kind     fieldKind
	nullable bool
	optional bool // absent key is accepted; present values still follow the rule
}

// humorRules is the humor add/update payload schema. The order is part of the
// contract: clients are told about exactly one invalid field per request, always
// the earliest one.
var humorRules = []payloadRule{
	{field: "date", kind: kindDate},
	{field: "author", kind: kindString, nullable: true},
	{field: "bundle_uuid", kind: kindString, nullable: true, optional: true},
	{field: "category", kind: kindCategory},
	{field: "context", kind: kindString},
	{field: "context_list", kind: kindStringList, nullable: true},
	{field: "created_date", kind: kindDate},
	{field: "index", kind: kindInt},
	{field: "punchline", kind: kindString, nullable: true},
	{field: "sender", kind: kindString},
	{field: "source", kind: kindString},
	{field: "uuid", kind: kindString},
}

// bundleRules is the bundle add/update payload schema.
var bundleRules = []payloadRule{
	{field: "title", kind: kindString},
	{field: "description", kind: kindString},
	{field: "category", kind: kindCategory},
	{field: "release_date", kind: kindDate},
	{field: "humor_count", kind: kindInt},
	{field: "language_code", kind: kindString},
	{field: "product_id", kind: kindString},
	{field: "preview_count", kind: kindInt},
	{field: "preview_show_punchline", kind: kindBool},
	{field: "active", kind: kindBool},
	{field: "uuid", kind: kindString},
}

// submissionRules is the user humor submission payload schema. The submission
// date is server-assigned and deliberately absent here.
var submissionRules = []payloadRule{
	{field: "nickname", kind: kindString},
	{field: "context", kind: kindString},
	{field: "punchline", kind: kindString, nullable: true},
	{field: "app_uuid", kind: kindString},
	{field: "humor_uuid", kind: kindString},
	{field: "subscription_type", kind: kindString},
}

// ValidateHumorPayload checks an untyped humor payload against the humor schema.
// Returns nil on success, otherwise the first failing field.
func ValidateHumorPayload(body map[string]any) *ValidationError {
	return validatePayload(body, humorRules)
}

// ValidateBundlePayload checks an untyped bundle payload against the bundle schema.
func ValidateBundlePayload(body map[string]any) *ValidationError {
	return validatePayload(body, bundleRules)
}

// ValidateSubmissionPayload checks an untyped user submission payload.
func ValidateSubmissionPayload(body map[string]any) *ValidationError {
	return validatePayload(body, submissionRules)
}

func validatePayload(body map[string]any, rules []payloadRule) *ValidationError {
	for _, rule := range rules {
		if err := rule.check(body); err != nil {
			return err
		}
	}
	return nil
}

func (r payloadRule) check(body map[string]any) *ValidationError {
	v, ok := body[r.field]
	if !ok || v == nil {
		if !ok && r.optional {
			return nil
		}
		if r.nullable && ok {
			// explicit null is an accepted absence marker
			return nil
		}
		return r.fail()
	}

	switch r.kind {
	case kindString:
		s, ok := v.(string)
		if !ok || trimEmpty(s) {
			return r.fail()
		}
	case kindDate:
		s, ok := v.(string)
		if !ok || !dateRe.MatchString(s) {
			return r.fail()
		}
	case kindCategory:
		s, ok := v.(string)
		if !ok || !HumorCategory(s).IsValid() {
			return r.fail()
		}
	case kindStringList:
		list, ok := v.([]any)
		if !ok {
			return r.fail()
		}
		for _, item := range list {
			if _, ok := item.(string); !ok {
				return r.fail()
			}
		}
	case kindInt:
		// JSON numbers decode as float64; require an integral, non-negative value.
		f, ok := v.(float64)
		if !ok || f != float64(int(f)) || f < 0 {
			return r.fail()
		}
	case kindBool:
		if _, ok := v.(bool); !ok {
			return r.fail()
		}
	}

	return nil
}

func (r payloadRule) fail() *ValidationError {
	return NewValidationError(r.field, r.message())
}

func (r payloadRule) message() string {
	switch r.kind {
	case kindDate:
		return "expected format 'yyyy-mm-dd'"
	case kindCategory:
		return "expected one of the humor category values"
	case kindStringList:
		return "expected a list of strings"
	case kindInt:
		return "expected a non-negative integer"
	case kindBool:
		return "expected a boolean"
	default:
		return "expected a non-empty string"
	}
}

func trimEmpty(s string) bool {
	for _, c := range s {
		if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
			return false
		}
	}
	return true
}

// ---------------------------------------------------------------------------
// Payload decoding. All helpers assume the payload already passed validation,
// so type assertions here are safe against the schema.
// ---------------------------------------------------------------------------

// HumorFromPayload builds a Humor from a validated humor payload.
func HumorFromPayload(body map[string]any) Humor {
	return Humor{
		UUID:        body["uuid"].(string),
		Category:    HumorCategory(body["category"].(string)),
		Context:     body["context"].(string),
		Punchline:   optString(body, "punchline"),
		ContextList: stringList(body, "context_list"),
		Sender:      body["sender"].(string),
		Source:      body["source"].(string),
		Author:      optString(body, "author"),
		ReleaseDate: body["date"].(string),
		CreatedDate: body["created_date"].(string),
		Index:       int(body["index"].(float64)),
		Active:      optBool(body, "active", true),
		BundleUUID:  optString(body, "bundle_uuid"),
	}
}

// HumorUpdateFromPayload builds the partial-update field set from a validated payload.
func HumorUpdateFromPayload(body map[string]any) HumorUpdate {
	return HumorUpdate{
		Author:      optString(body, "author"),
		Context:     body["context"].(string),
		Punchline:   optString(body, "punchline"),
		ContextList: stringList(body, "context_list"),
		CreatedDate: body["created_date"].(string),
		Index:       int(body["index"].(float64)),
		Sender:      body["sender"].(string),
		Source:      body["source"].(string),
	}
}

// BundleFromPayload builds a Bundle from a validated bundle payload.
func BundleFromPayload(body map[string]any) Bundle {
	return Bundle{
		UUID:                 body["uuid"].(string),
		Title:                body["title"].(string),
		Description:          body["description"].(string),
		Category:             HumorCategory(body["category"].(string)),
		ReleaseDate:          body["release_date"].(string),
		HumorCount:           int(body["humor_count"].(float64)),
		LanguageCode:         body["language_code"].(string),
		ProductID:            body["product_id"].(string),
		PreviewCount:         int(body["preview_count"].(float64)),
		PreviewShowPunchline: body["preview_show_punchline"].(bool),
		Active:               body["active"].(bool),
	}
}

// BundleUpdateFromPayload builds the partial-update field set from a validated payload.
func BundleUpdateFromPayload(body map[string]any) BundleUpdate {
	return BundleUpdate{
		Title:                body["title"].(string),
		Description:          body["description"].(string),
		ReleaseDate:          body["release_date"].(string),
		HumorCount:           int(body["humor_count"].(float64)),
		LanguageCode:         body["language_code"].(string),
		ProductID:            body["product_id"].(string),
		PreviewCount:         int(body["preview_count"].(float64)),
		PreviewShowPunchline: body["preview_show_punchline"].(bool),
		Active:               body["active"].(bool),
	}
}

// SubmissionFromPayload builds a UserSubmission from a validated payload.
// SubmissionDate is left empty; the service assigns it.
func SubmissionFromPayload(body map[string]any) UserSubmission {
	return UserSubmission{
		Nickname:         body["nickname"].(string),
		Context:          body["context"].(string),
		Punchline:        optString(body, "punchline"),
		AppUUID:          body["app_uuid"].(string),
		HumorUUID:        body["humor_uuid"].(string),
		SubscriptionType: body["subscription_type"].(string),
	}
}

func optString(body map[string]any, field string) *string {
	if s, ok := body[field].(string); ok {
		return &s
	}
	return nil
}

func optBool(body map[string]any, field string, def bool) bool {
	if b, ok := body[field].(bool); ok {
		return b
	}
	return def
}

func stringList(body map[string]any, field string) []string {
	list, ok := body[field].([]any)
	if !ok {
		return nil
	}
	out := make([]string, len(list))
	for i, item := range list {
		out[i] = item.(string)
	}
	return out
}
