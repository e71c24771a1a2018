package cms

import (
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/core/response"
)

type signInForm struct {
	Username string `form:"username,raw"`
	Password string `form:"password,raw"`
}

func (a *App) signInForm(ctx *Context) handler.Response {
	return a.page(ctx, "signin", pageData{Title: "Sign in"}, http.StatusOK)
}

// signIn answers unknown users and wrong passwords with the same message.
func (a *App) signIn(ctx *Context) handler.Response {
	var form signInForm
	if err := ctx.Bind(&form); err != nil {
		return response.Error(err)
	}

	if !a.users.Authenticate(form.Username, form.Password) {
		a.logger.WarnContext(ctx, "sign in rejected",
			logger.Component("cms"),
			logger.Event("auth.failed"),
			logger.Username(form.Username),
		)
		return a.page(ctx, "signin", pageData{
			Title:        "Sign in",
			Flash:        "Invalid credentials.",
			FormUsername: form.Username,
		}, http.StatusUnprocessableEntity)
	}

	if err := ctx.SignIn(form.Username); err != nil {
		return response.Error(err)
	}

	a.logEvent(ctx, "user.signed_in")
	ctx.SetFlash("Welcome " + form.Username)
	return response.Redirect("/")
}

func (a *App) signOut(ctx *Context) handler.Response {
	username := ctx.Username()
	if err := ctx.SignOut(); err != nil {
		return response.Error(err)
	}

	a.logger.InfoContext(ctx, "user.signed_out",
		logger.Component("cms"),
		logger.Event("user.signed_out"),
		logger.Username(username),
	)
	ctx.SetFlash("You have been signed out.")
	return response.Redirect("/")
}
