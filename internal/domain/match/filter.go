package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

const DateLayout = "2006-01-02"

var ErrInvalidFilter = errors.New("invalid match filter")

// Filter selects which matches to ask the upstream for. The zero value is unrestricted.
// Competition and TeamID switch the endpoint; everything else becomes query parameters.
type Filter struct {
	Date        string   `validate:"omitempty,datetime=2006-01-02,excluded_with=DateFrom DateTo"`
	DateFrom    string   `validate:"omitempty,datetime=2006-01-02"`
	DateTo      string   `validate:"omitempty,datetime=2006-01-02"`
	Statuses    []Status `validate:"dive,match_status"`
	Stages      []Stage  `validate:"dive,match_stage"`
	Competition string   `validate:"omitempty,alphanum,max=10,excluded_with=TeamID"`
	TeamID      int64    `validate:"gte=0"`
	Limit       int      `validate:"gte=0,lte=500"`
}

var filterValidator = newFilterValidator()

func newFilterValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("match_status", func(fl validator.FieldLevel) bool {
		return Status(fl.Field().String()).Valid()
	})
	_ = v.RegisterValidation("match_stage", func(fl validator.FieldLevel) bool {
		return Stage(fl.Field().String()).Valid()
	})
	return v
}

// Validate checks date formats, enum membership and the date range order.
func (f Filter) Validate() error {
	if err := filterValidator.Struct(f); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return fmt.Errorf("%w: field %s failed %q", ErrInvalidFilter, first.Field(), first.Tag())
		}
		return fmt.Errorf("%w: %v", ErrInvalidFilter, err)
	}
	if (f.DateFrom == "") != (f.DateTo == "") {
		return fmt.Errorf("%w: dateFrom and dateTo must be set together", ErrInvalidFilter)
	}
	// ISO dates order lexicographically.
	if f.DateFrom != "" && f.DateTo != "" && f.DateFrom > f.DateTo {
		return fmt.Errorf("%w: dateFrom %s is after dateTo %s", ErrInvalidFilter, f.DateFrom, f.DateTo)
	}
	return nil
}

// JoinStatuses renders a status set the way the upstream expects: comma separated.
func JoinStatuses(items []Status) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, string(item))
	}
	return strings.Join(parts, ",")
}

func JoinStages(items []Stage) string {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, string(item))
	}
	return strings.Join(parts, ",")
}

// ParseStatuses splits a comma separated query value; blanks are dropped.
func ParseStatuses(raw string) []Status {
	var out []Status
	for _, part := range strings.Split(raw, ",") {
		if s := NormalizeStatus(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func ParseStages(raw string) []Stage {
	var out []Stage
	for _, part := range strings.Split(raw, ",") {
		if s := NormalizeStage(part); s != "" {
			out = append(out, s)
		}
	}
	return out
}
