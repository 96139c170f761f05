package tipjar

import (
	"fmt"
	"net/url"
	"regexp"
	"sort"
	"strings"

	tipjarsupabase "github.com/tipjarz/tipjarz/services/tipjar/supabase"
)

// Field length limits, matching the store schema.
const (
	maxBioLen         = 500
	maxContentLen     = 1000
	maxMessageLen     = 280
	maxSecretLen      = 5000
	maxTitleLen       = 200
	maxDescriptionLen = 500
)

// addressPattern matches 0x-prefixed 40-hex-digit wallet addresses.
var addressPattern = regexp.MustCompile(`^0x[0-9a-fA-F]{40}$`)

// =============================================================================
// Validation Error
// =============================================================================

// ValidationError enumerates every violated field and its rule. It is
// always client-recoverable and maps to a 400 response.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	names := make([]string, 0, len(e.Fields))
	for f := range e.Fields {
		names = append(names, f)
	}
	sort.Strings(names)
	return "invalid input data: " + strings.Join(names, ", ")
}

func (e *ValidationError) add(field, rule string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = rule
}

// or nil when nothing was violated.
func (e *ValidationError) orNil() *ValidationError {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func checkAddress(e *ValidationError, field, value string) {
	if !addressPattern.MatchString(value) {
		e.add(field, "must be a 0x-prefixed 40-hex-digit address")
	}
}

func checkRequiredMax(e *ValidationError, field, value string, max int) {
	if value == "" {
		e.add(field, "is required")
		return
	}
	if len(value) > max {
		e.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func checkOptionalMax(e *ValidationError, field, value string, max int) {
	if len(value) > max {
		e.add(field, fmt.Sprintf("must be at most %d characters", max))
	}
}

func checkPositiveAmount(e *ValidationError, field, value string) {
	d, err := parseAmount(value)
	if err != nil || !d.IsPositive() {
		e.add(field, "must be a positive decimal number")
	}
}

func checkURL(e *ValidationError, field, value string) {
	u, err := url.ParseRequestURI(value)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") {
		e.add(field, "must be a valid http(s) URL")
	}
}

// =============================================================================
// Request Inputs
// =============================================================================

// CreateCreatorInput is the body of POST /creators.
type CreateCreatorInput struct {
	CreatorID     string `json:"creatorId"`
	WalletAddress string `json:"walletAddress"`
	Bio           string `json:"bio"`
	Content       string `json:"content"`
	Name          string `json:"name,omitempty"`
	Avatar        string `json:"avatar,omitempty"`
}

// Validate checks the input and reports every violation at once.
func (in *CreateCreatorInput) Validate() *ValidationError {
	e := &ValidationError{}
	if in.CreatorID == "" {
		e.add("creatorId", "is required")
	}
	checkAddress(e, "walletAddress", in.WalletAddress)
	checkRequiredMax(e, "bio", in.Bio, maxBioLen)
	checkRequiredMax(e, "content", in.Content, maxContentLen)
	if in.Avatar != "" {
		checkURL(e, "avatar", in.Avatar)
	}
	return e.orNil()
}

// UpdateCreatorInput is the body of PUT /creators. Nil fields are left
// unchanged.
type UpdateCreatorInput struct {
	CreatorID string  `json:"creatorId"`
	Bio       *string `json:"bio,omitempty"`
	Content   *string `json:"content,omitempty"`
	Name      *string `json:"name,omitempty"`
	Avatar    *string `json:"avatar,omitempty"`
}

func (in *UpdateCreatorInput) Validate() *ValidationError {
	e := &ValidationError{}
	if in.Bio != nil {
		checkRequiredMax(e, "bio", *in.Bio, maxBioLen)
	}
	if in.Content != nil {
		checkRequiredMax(e, "content", *in.Content, maxContentLen)
	}
	if in.Avatar != nil {
		checkURL(e, "avatar", *in.Avatar)
	}
	return e.orNil()
}

// CreateTipInput is the body of POST /tips.
type CreateTipInput struct {
	CreatorID       string `json:"creatorId"`
	TipperAddress   string `json:"tipperAddress"`
	Amount          string `json:"amount"`
	Currency        string `json:"currency"`
	Message         string `json:"message,omitempty"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

func (in *CreateTipInput) Validate() *ValidationError {
	e := &ValidationError{}
	if in.CreatorID == "" {
		e.add("creatorId", "is required")
	}
	checkAddress(e, "tipperAddress", in.TipperAddress)
	checkPositiveAmount(e, "amount", in.Amount)
	if in.Currency == "" {
		e.add("currency", "is required")
	}
	checkOptionalMax(e, "message", in.Message, maxMessageLen)
	return e.orNil()
}

// UpdateTipInput is the body of PUT /tips.
type UpdateTipInput struct {
	TipID           string `json:"tipId"`
	Status          string `json:"status"`
	TransactionHash string `json:"transactionHash,omitempty"`
}

func (in *UpdateTipInput) Validate() *ValidationError {
	e := &ValidationError{}
	if in.TipID == "" {
		e.add("tipId", "is required")
	}
	if !tipjarsupabase.TipStatus(in.Status).Valid() {
		e.add("status", "must be one of pending, confirmed, failed")
	}
	return e.orNil()
}

// CreateGatedContentInput is the body of POST /gated-content.
type CreateGatedContentInput struct {
	CreatorID     string `json:"creatorId"`
	SecretContent string `json:"secretContent"`
	MinTipAmount  string `json:"minTipAmount"`
	Title         string `json:"title"`
	Description   string `json:"description"`
	UnlockLimit   *int   `json:"unlockLimit,omitempty"`
}

func (in *CreateGatedContentInput) Validate() *ValidationError {
	e := &ValidationError{}
	if in.CreatorID == "" {
		e.add("creatorId", "is required")
	}
	checkRequiredMax(e, "secretContent", in.SecretContent, maxSecretLen)
	checkPositiveAmount(e, "minTipAmount", in.MinTipAmount)
	checkRequiredMax(e, "title", in.Title, maxTitleLen)
	checkRequiredMax(e, "description", in.Description, maxDescriptionLen)
	if in.UnlockLimit != nil && *in.UnlockLimit <= 0 {
		e.add("unlockLimit", "must be positive")
	}
	return e.orNil()
}

// UnlockInput is the body of POST /gated-content/unlock.
type UnlockInput struct {
	ContentID     string `json:"contentId"`
	TipperAddress string `json:"tipperAddress"`
}

func (in *UnlockInput) Validate() *ValidationError {
	e := &ValidationError{}
	if in.ContentID == "" {
		e.add("contentId", "is required")
	}
	checkAddress(e, "tipperAddress", in.TipperAddress)
	return e.orNil()
}

// SubmitTipInput is the body of POST /wallet/tip.
type SubmitTipInput struct {
	PayerAddress string `json:"payerAddress"`
	PayeeAddress string `json:"payeeAddress"`
	Amount       string `json:"amount"`
}

func (in *SubmitTipInput) Validate() *ValidationError {
	e := &ValidationError{}
	checkAddress(e, "payerAddress", in.PayerAddress)
	checkAddress(e, "payeeAddress", in.PayeeAddress)
	checkPositiveAmount(e, "amount", in.Amount)
	return e.orNil()
}
