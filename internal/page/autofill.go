package page

import (
	"strings"

	"github.com/bnema/pagecore/internal/application/port"
)

// StartedEditingElement is called when an editable element gains focus, and
// with nil when focus leaves editing. A field of a login form keeps an
// autofill snapshot and tells the host; anything else drops the snapshot.
func (s *Session) StartedEditingElement(el port.Element) {
	found, ok := findLoginPair(el)
	if !ok {
		if s.autofill != nil {
			s.logger.Trace().Msg("autofill snapshot cleared")
		}
		s.autofill = nil
		return
	}
	s.autofill = &found
	s.host.Autofill.HasAutofill(found.FormAction)
}

// HasAutofillElements reports whether a login form is being edited.
func (s *Session) HasAutofillElements() bool { return s.autofill != nil }

// AutofillElements returns the current login pair, if any.
func (s *Session) AutofillElements() (AutofillElements, bool) {
	if s.autofill == nil {
		return AutofillElements{}, false
	}
	return *s.autofill, true
}

// StoreAutofill hands the values typed into the login pair to the host.
func (s *Session) StoreAutofill() bool {
	if s.autofill == nil {
		return false
	}
	a := s.autofill
	s.host.Autofill.StoreAutofill(a.FormAction, a.Username.Value(), a.Password.Value())
	return true
}

// FillAutofill writes credentials into the login pair.
func (s *Session) FillAutofill(username, password string) bool {
	if s.autofill == nil {
		return false
	}
	s.autofill.Username.SetValue(username)
	s.autofill.Password.SetValue(password)
	return true
}

// findLoginPair looks for a form with exactly one password field and a
// text-like field before it, and requires el to be one of the two.
func findLoginPair(el port.Element) (AutofillElements, bool) {
	if el == nil || !el.IsEditable() || !strings.EqualFold(el.TagName(), "input") {
		return AutofillElements{}, false
	}
	form := el.Form()
	if form == nil {
		return AutofillElements{}, false
	}

	var username, password port.Element
	for _, candidate := range form.Elements() {
		if !strings.EqualFold(candidate.TagName(), "input") {
			continue
		}
		switch t := candidate.InputType(); {
		case t == "password":
			if password != nil {
				return AutofillElements{}, false
			}
			password = candidate
		case password == nil && isUsernameType(t):
			username = candidate
		}
	}
	if username == nil || password == nil || (el != username && el != password) {
		return AutofillElements{}, false
	}
	return AutofillElements{Username: username, Password: password, FormAction: form.Action()}, true
}

func isUsernameType(t string) bool {
	switch t {
	case "", "text", "email", "tel":
		return true
	}
	return false
}
