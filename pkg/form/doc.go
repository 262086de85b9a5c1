// Package form holds the headless presentation state of the login and
// signup forms: field values, per-field messages, a main error and the
// submit flow. Rendering is left to the caller.
//
//	p := form.NewLoginPresenter(validation, auth, saveToken)
//	p.Form().Set("email", "user@example.com")
//	p.Form().Set("password", "secret")
//	res, err := p.Submit(ctx)
//	if err != nil {
//		// p.Form().MainError() has the text to show
//	}
//	// redirect to res.Redirect
package form
