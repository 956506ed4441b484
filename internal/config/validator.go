package config

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	opsdeckerrors "github.com/opsdeck/opsdeck/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	versionPattern   = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?$`)
	panelIDPattern   = regexp.MustCompile(`^[a-z0-9_-]+$`)
	hexColourPattern = regexp.MustCompile(`^#(?:[0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

	themeNames   = map[string]struct{}{"default": {}, "dark": {}}
	sizeVariants = map[string]struct{}{"sm": {}, "md": {}, "lg": {}, "xl": {}}
	corners      = map[string]struct{}{
		"top-left": {}, "top-right": {}, "bottom-left": {}, "bottom-right": {},
	}
)

// validatorInstance configures and returns the shared validator instance used
// across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("schema_version", func(fl validator.FieldLevel) bool {
			return versionPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("panel_id", func(fl validator.FieldLevel) bool {
			return panelIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("hex_colour", func(fl validator.FieldLevel) bool {
			return hexColourPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			_, ok := themeNames[strings.ToLower(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("size_variant", func(fl validator.FieldLevel) bool {
			_, ok := sizeVariants[strings.ToLower(fl.Field().String())]
			return ok
		})

		_ = v.RegisterValidation("corner", func(fl validator.FieldLevel) bool {
			_, ok := corners[strings.ToLower(fl.Field().String())]
			return ok
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns the configured validator instance for use outside the
// config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}

// ValidateConfig performs schema and cross-field validation on the
// configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return opsdeckerrors.NewValidationError("config", "configuration is nil", nil)
	}

	v := validatorInstance()
	if err := v.Struct(cfg); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]int, len(cfg.Panels))
	for i, panel := range cfg.Panels {
		if _, exists := seen[panel.ID]; exists {
			return opsdeckerrors.NewValidationError(
				fmt.Sprintf("panels[%d].id", i),
				fmt.Sprintf("duplicate panel id %q", panel.ID),
				nil,
			)
		}
		seen[panel.ID] = i
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return opsdeckerrors.NewValidationError(field, msg, err)
	}

	return opsdeckerrors.NewValidationError("config", err.Error(), err)
}

func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	parts := strings.Split(ns, ".")
	var lowered []string
	for _, part := range parts {
		lowered = append(lowered, strings.ToLower(part))
	}
	return strings.Join(lowered, ".")
}
