package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	"github.com/Marga-Ghale/portfolio-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var registerTagNames sync.Once

// RegisterJSONTagNames makes validation errors report JSON field names instead of Go field names.
func RegisterJSONTagNames() {
	registerTagNames.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			if name == "" {
				return field.Name
			}
			return name
		})
	})
}

// respondValidationError writes a 422 with one issue per rejected field.
func respondValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, models.ErrorResponse{Detail: validationIssues(err)})
}

func validationIssues(err error) []models.ValidationIssue {
	var (
		fieldErrs validator.ValidationErrors
		typeErr   *json.UnmarshalTypeError
		decodeErr *models.FieldError
		syntaxErr *json.SyntaxError
	)

	switch {
	case errors.As(err, &fieldErrs):
		issues := make([]models.ValidationIssue, 0, len(fieldErrs))
		for _, fe := range fieldErrs {
			issues = append(issues, fieldIssue(fe))
		}
		return issues

	case errors.As(err, &decodeErr):
		return []models.ValidationIssue{{
			Loc:  []string{"body", decodeErr.Field},
			Msg:  decodeErr.Msg,
			Type: decodeErr.Type,
		}}

	case errors.As(err, &typeErr):
		loc := []string{"body"}
		if typeErr.Field != "" {
			loc = append(loc, strings.Split(typeErr.Field, ".")...)
		}
		return []models.ValidationIssue{{
			Loc:  loc,
			Msg:  "Input should be a valid " + jsonKind(typeErr.Type),
			Type: jsonKind(typeErr.Type) + "_type",
		}}

	case errors.Is(err, io.EOF):
		return []models.ValidationIssue{{Loc: []string{"body"}, Msg: "Field required", Type: "missing"}}

	case errors.As(err, &syntaxErr), errors.Is(err, io.ErrUnexpectedEOF):
		return []models.ValidationIssue{{Loc: []string{"body"}, Msg: "JSON decode error", Type: "json_invalid"}}

	default:
		return []models.ValidationIssue{{Loc: []string{"body"}, Msg: err.Error(), Type: "value_error"}}
	}
}

func fieldIssue(fe validator.FieldError) models.ValidationIssue {
	issue := models.ValidationIssue{Loc: []string{"body", fe.Field()}}

	switch fe.Tag() {
	case "required":
		issue.Msg = "Field required"
		issue.Type = "missing"
	case "email":
		issue.Msg = "value is not a valid email address"
		issue.Type = "value_error"
	default:
		issue.Msg = "Value failed the " + fe.Tag() + " check"
		issue.Type = "value_error"
	}
	return issue
}

func jsonKind(t reflect.Type) string {
	if t == nil {
		return "value"
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "bool"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return "int"
	case reflect.Float32, reflect.Float64:
		return "float"
	case reflect.Slice, reflect.Array:
		return "list"
	case reflect.Pointer:
		return jsonKind(t.Elem())
	default:
		return "value"
	}
}
