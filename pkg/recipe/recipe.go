package recipe

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"sigs.k8s.io/yaml"
)

const (
	// FileEnv names the recipe file the commands load by default.
	FileEnv = "PIZZERIA_RECIPES"

	filledTag = "filled"
)

var validate = newValidator()

// Recipe describes an additional pizza variant. Every field is required.
type Recipe struct {
	Name    string `json:"name"    validate:"filled"`
	Dough   string `json:"dough"   validate:"filled"`
	Sauce   string `json:"sauce"   validate:"filled"`
	Topping string `json:"topping" validate:"filled"`
}

type file struct {
	Recipes []Recipe `json:"recipes"`
}

func newValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		return strings.Split(field.Tag.Get("json"), ",")[0]
	})

	err := v.RegisterValidation(filledTag, func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	if err != nil {
		panic(err)
	}

	return v
}

func (r Recipe) Validate() error {
	err := validate.Struct(r)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return errors.WithStack(err)
	}

	missing := make([]string, 0, len(validationErrors))
	for _, fieldError := range validationErrors {
		missing = append(missing, fieldError.Field())
	}

	return errors.Errorf("recipe %q is missing required fields: %s", r.Name, strings.Join(missing, ", "))
}

// Load reads and validates a recipe file.
func Load(fs afero.Fs, path string) ([]Recipe, error) {
	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read recipe file %s", path)
	}

	recipes, err := Parse(content)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid recipe file %s", path)
	}

	return recipes, nil
}

// Parse decodes recipes from YAML. Unknown fields and duplicate names are rejected.
func Parse(content []byte) ([]Recipe, error) {
	var parsed file

	err := yaml.UnmarshalStrict(content, &parsed)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	seen := make(map[string]bool, len(parsed.Recipes))

	for i, r := range parsed.Recipes {
		if err := r.Validate(); err != nil {
			return nil, errors.Wrapf(err, "recipe #%d", i+1)
		}

		if seen[r.Name] {
			return nil, errors.Errorf("recipe %q is defined more than once", r.Name)
		}

		seen[r.Name] = true
	}

	return parsed.Recipes, nil
}
