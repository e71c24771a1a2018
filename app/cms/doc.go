// Package cms is the document management application: a listing of text
// documents that anyone can read and signed-in users can create, edit,
// duplicate and delete.
//
// Routes:
//
//	GET  /                        listing
//	GET  /users/signin            sign-in form
//	POST /users/signin            sign in (302, or 422 with the form)
//	POST /sign_out                sign out
//	GET  /{filename}              view; Markdown renders inside the layout
//	GET  /new                     new document form        (signed in)
//	POST /new                     create (302, or 422)     (signed in)
//	GET  /{filename}/edit         edit form with raw source (signed in)
//	POST /{filename}/edit         overwrite content        (signed in)
//	POST /{filename}/delete       delete                   (signed in)
//	POST /{filename}/duplicate    copy to <stem>_copy<ext> (signed in)
//	GET  /assets/style.css        embedded stylesheet
//	GET  /_health/live            liveness probe
//	GET  /_health/ready           readiness probe
//
// Guarded routes sit behind requireSignIn, which answers anonymous visitors
// with the flash "You must be signed in to do that." and a redirect to the
// listing; the handler never runs. Missing documents redirect to the listing
// with "<name> does not exist.".
//
// Sign-in attempts are limited per client IP (SIGNIN_RATE_LIMIT per
// SIGNIN_RATE_WINDOW); over the limit the form answers 429.
//
// Flash messages live in the server-side session and are consumed by the
// next rendered page.
//
//	var cfg cms.Config
//	config.MustLoad(&cfg)
//	app, err := cms.NewApp(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer app.Close()
//	return app.Run(ctx)
package cms
