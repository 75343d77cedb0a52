package folio

import (
	"errors"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// ContactInput is the submitted contact form.
type ContactInput struct {
	Name    string `form:"name" json:"name" validate:"required,max=100"`
	Email   string `form:"email" json:"email" validate:"required,email,max=254"`
	Message string `form:"message" json:"message" validate:"required,max=5000"`
}

func (in *ContactInput) trim() {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.TrimSpace(in.Email)
	in.Message = strings.TrimSpace(in.Message)
}

// Contact form outcomes.
const (
	ContactSent    = "sent"
	ContactTooMany = "tooMany"
)

// ContactForm is the view model of the contact form. Errors maps a field
// name to the translation key of its message.
type ContactForm struct {
	Input  ContactInput
	Errors map[string]string
	Status string
}

// Error returns the translation key of the error on field, or "".
func (f ContactForm) Error(field string) string {
	return f.Errors[field]
}

type formValidator struct {
	v *validator.Validate
}

func newFormValidator() *formValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	return &formValidator{v: v}
}

// Validate implements echo.Validator.
func (fv *formValidator) Validate(i any) error {
	return fv.v.Struct(i)
}

var validationKeys = map[string]string{
	"required": "contact.error.required",
	"email":    "contact.error.email",
	"max":      "contact.error.max",
}

// fieldErrors maps validation failures to per-field translation keys. ok
// is false when err is not a validation error.
func fieldErrors(err error) (map[string]string, bool) {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		key, ok := validationKeys[fe.Tag()]
		if !ok {
			key = "contact.error.required"
		}
		out[fe.Field()] = key
	}
	return out, true
}

func (a *App) contactPage(c echo.Context) Page {
	p := a.newPage(c, "", "")
	p.Meta.Title = p.T("contact.title") + " | " + a.Config.Name
	p.Meta.Description = p.T("contact.description")
	return p
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact(a.contactPage(c), ContactForm{}))
}

func (a *App) handleContactSubmit(c echo.Context) error {
	p := a.contactPage(c)

	var in ContactInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid form")
	}
	in.trim()
	form := ContactForm{Input: in}
	status := http.StatusOK

	if err := c.Validate(&in); err != nil {
		errs, ok := fieldErrors(err)
		if !ok {
			return err
		}
		form.Errors = errs
		status = http.StatusUnprocessableEntity
	} else if !a.contactLimiter.Allow(c.RealIP()) {
		form.Status = ContactTooMany
		status = http.StatusTooManyRequests
	} else {
		msg, err := a.Store.SaveMessage(Message{
			Name:     in.Name,
			Email:    in.Email,
			Body:     in.Message,
			Language: p.Lang.String(),
		})
		if err != nil {
			return err
		}
		if err := a.notifier.Notify(c.Request().Context(), msg); err != nil {
			c.Logger().Warnf("contact notification %s: %v", msg.ID, err)
		}
		form = ContactForm{Status: ContactSent}
	}

	if isPartial(c) {
		return RenderStatus(c, status, a.Views.ContactForm(p, form))
	}
	return RenderStatus(c, status, a.Views.Contact(p, form))
}
