package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	timeType = reflect.TypeOf(time.Time{})
	planType = reflect.TypeOf(BusinessPlan{})

	validateOnce sync.Once
	validate     *validator.Validate
)

// Decode parses a JSON business plan payload. The payload must match the
// document shape field for field; generated fields (id, timestamps) are
// optional. Values are not judged, see CheckRules.
func Decode(data []byte) (*BusinessPlan, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, &ValidationError{Reason: "malformed JSON", Err: err}
	}
	if err := checkShape(planType, raw, ""); err != nil {
		return nil, err
	}

	var plan BusinessPlan
	if err := json.Unmarshal(data, &plan); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, &ValidationError{Field: typeErr.Field, Reason: "expected " + typeErr.Type.String(), Err: err}
		}
		return nil, &ValidationError{Reason: "invalid value", Err: err}
	}
	return &plan, nil
}

// Validate checks that an already typed plan has the document shape, i.e.
// no required list or object would encode as null.
func Validate(plan *BusinessPlan) error {
	if plan == nil {
		return &ValidationError{Reason: "plan is nil"}
	}

	data, err := json.Marshal(plan)
	if err != nil {
		return &ValidationError{Reason: "invalid value", Err: err}
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var raw any
	if err := dec.Decode(&raw); err != nil {
		return &ValidationError{Reason: "invalid value", Err: err}
	}
	return checkShape(planType, raw, "")
}

// RuleViolation is a value that is well-formed but looks wrong for a
// business plan, such as an empty name or an unbalanced profit block.
type RuleViolation struct {
	Field  string
	Reason string
}

func (v RuleViolation) String() string {
	return v.Field + ": " + v.Reason
}

// CheckRules reports every value-level rule the plan breaks. Violations do
// not make a plan invalid; seeding ignores them.
func CheckRules(plan *BusinessPlan) []RuleViolation {
	if plan == nil {
		return nil
	}

	err := validatorInstance().Struct(plan)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []RuleViolation{{Reason: err.Error()}}
	}

	out := make([]RuleViolation, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, RuleViolation{Field: fieldPath(fe.Namespace()), Reason: ruleReason(fe)})
	}
	return out
}

func validatorInstance() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			name, _ := jsonName(f)
			if name == "-" {
				return ""
			}
			return name
		})
		validate.RegisterStructValidation(profitabilityRule, ProfitabilityData{})
	})
	return validate
}

// net_profit should be the difference of revenue and operating cost.
func profitabilityRule(sl validator.StructLevel) {
	p := sl.Current().Interface().(ProfitabilityData)
	if p.YearlyRevenue-p.OperationCosts != p.NetProfit {
		sl.ReportError(p.NetProfit, "net_profit", "NetProfit", "net_profit_balance", "")
	}
}

func checkShape(t reflect.Type, v any, path string) error {
	if t == timeType {
		return nil
	}

	switch t.Kind() {
	case reflect.Struct:
		obj, ok := v.(map[string]any)
		if !ok {
			return &ValidationError{Field: rootName(path), Reason: "expected object"}
		}
		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			if !f.IsExported() {
				continue
			}
			name, omitempty := jsonName(f)
			if name == "-" || omitempty {
				continue
			}
			fieldPath := joinPath(path, name)
			val, present := obj[name]
			if !present || val == nil {
				return &ValidationError{Field: fieldPath, Reason: "field required"}
			}
			if err := checkShape(f.Type, val, fieldPath); err != nil {
				return err
			}
		}
	case reflect.Slice:
		items, ok := v.([]any)
		if !ok {
			return &ValidationError{Field: rootName(path), Reason: "expected list"}
		}
		for i, item := range items {
			itemPath := fmt.Sprintf("%s[%d]", path, i)
			if item == nil {
				return &ValidationError{Field: itemPath, Reason: "null list item"}
			}
			if err := checkShape(t.Elem(), item, itemPath); err != nil {
				return err
			}
		}
	case reflect.String:
		if _, ok := v.(string); !ok {
			return &ValidationError{Field: path, Reason: "expected string"}
		}
	case reflect.Int, reflect.Int32, reflect.Int64:
		n, ok := v.(json.Number)
		if !ok {
			return &ValidationError{Field: path, Reason: "expected integer"}
		}
		if _, err := n.Int64(); err != nil {
			return &ValidationError{Field: path, Reason: "expected integer"}
		}
	}
	return nil
}

func jsonName(f reflect.StructField) (string, bool) {
	tag := f.Tag.Get("json")
	if tag == "" {
		return f.Name, false
	}
	name, opts, _ := strings.Cut(tag, ",")
	if name == "" {
		name = f.Name
	}
	return name, strings.Contains(opts, "omitempty")
}

func joinPath(parent, name string) string {
	if parent == "" {
		return name
	}
	return parent + "." + name
}

func rootName(path string) string {
	if path == "" {
		return "$"
	}
	return path
}

// fieldPath turns "BusinessPlan.menu.proteins[2]" into "menu.proteins[2]".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func ruleReason(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "must not be empty"
	case "min":
		return "must contain at least " + fe.Param() + " item(s)"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "net_profit_balance":
		return "must equal yearly_revenue - operation_costs"
	default:
		return "failed " + fe.Tag() + " rule"
	}
}
