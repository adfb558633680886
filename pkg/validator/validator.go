package validator

import (
	"log"
	"reflect"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var dniPattern = regexp.MustCompile(`^\d{8}[A-Za-z]$`)

// RegisterGinValidator wires json tag names and the club's custom rules
// into gin's binding validator.
func RegisterGinValidator() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
		err := v.RegisterValidation("dni", dniValidator)
		if err != nil {
			log.Fatal("register dni validator failed")
		}
	}
}

// New returns a standalone validator with the same custom rules, for
// inputs that arrive outside gin binding (webhook metadata).
func New() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("dni", dniValidator); err != nil {
		log.Fatal("register dni validator failed")
	}
	return v
}

var dniValidator validator.Func = func(fl validator.FieldLevel) bool {
	return dniPattern.MatchString(fl.Field().String())
}
