// Package formserver exposes a form Registry over HTTP.
//
// Routes:
//
//	GET  /health        liveness report
//	GET  /forms         registered forms and their fields
//	POST /forms/{name}  validate one submission against the named form
//
// A valid submission answers 200 with {"values": {...}} holding the
// converted values. A rejected one answers 422 with
// {"errors": {"field": ["message", ...]}}, messages rendered in the
// language negotiated for the request. Unknown forms answer 404, bodies
// that cannot be read answer 415 or 400.
//
// # Usage
//
//	reg, err := form.LoadDefinitionsFile("forms.yaml")
//	if err != nil {
//	    return err
//	}
//	tr, err := i18n.NewTranslator(ctx, i18n.DefaultAdapter())
//	if err != nil {
//	    return err
//	}
//	srv := formserver.New(reg, formserver.WithTranslator(tr), formserver.WithLogger(log))
//	return httpserver.New().Run(ctx, srv.Router())
package formserver
