package service

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

// 输入校验统一走 validator，规则写在各 Input 结构体的 validate tag 上。
// validator 按字段声明顺序求值，因此"首个失败字段"是确定性的。
var inputValidator = validator.New(validator.WithRequiredStructEnabled())

// validateInput checks the tagged struct and wraps the first violated
// constraint into ErrInvalidInput with a human readable message.
func validateInput(input any) error {
	err := inputValidator.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}

	return fmt.Errorf("%w: %s", ErrInvalidInput, fieldErrorMessage(fieldErrs[0]))
}

// InputMessage extracts the user facing text from an ErrInvalidInput error.
func InputMessage(err error) string {
	if err == nil {
		return ""
	}
	text := err.Error()
	prefix := ErrInvalidInput.Error() + ": "
	if strings.HasPrefix(text, prefix) {
		return strings.TrimPrefix(text, prefix)
	}
	return text
}

func fieldErrorMessage(fe validator.FieldError) string {
	label := fieldLabel(fe.Field())

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", label)
	case "email":
		return "Invalid email address"
	case "hexcolor":
		return "Invalid hex color code"
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", label, fe.Param())
	case "min":
		if isStringKind(fe) {
			return fmt.Sprintf("%s must be at least %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", label, fe.Param())
	case "max":
		if isStringKind(fe) {
			return fmt.Sprintf("%s must be at most %s characters", label, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", label, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", label)
	}
}

func isStringKind(fe validator.FieldError) bool {
	return fe.Kind() == reflect.String
}

// fieldLabel 将驼峰字段名拆分为空格分隔的标签，例如 JobTitle -> Job title，
// 连续大写视为缩写保持原样（IconURL -> Icon URL）。
func fieldLabel(field string) string {
	var b strings.Builder
	runes := []rune(field)
	for i, r := range runes {
		if i > 0 && unicode.IsUpper(r) && unicode.IsLower(runes[i-1]) {
			b.WriteRune(' ')
			if i+1 < len(runes) && unicode.IsLower(runes[i+1]) {
				b.WriteRune(unicode.ToLower(r))
				continue
			}
		}
		b.WriteRune(r)
	}
	return b.String()
}
