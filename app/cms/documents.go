package cms

import (
	"errors"
	"html/template"
	"net/http"

	"github.com/dmitrymomot/doccms/core/handler"
	"github.com/dmitrymomot/doccms/core/logger"
	"github.com/dmitrymomot/doccms/core/render"
	"github.com/dmitrymomot/doccms/core/response"
	"github.com/dmitrymomot/doccms/core/storage"
)

// maxCopies bounds the search for a free "<stem>_copyN<ext>" name.
const maxCopies = 100

type newDocumentForm struct {
	Filename string `form:"filename,raw"`
}

type editDocumentForm struct {
	Content string `form:"file_content,raw"`
}

func (a *App) index(ctx *Context) handler.Response {
	files, err := a.store.List(ctx)
	if err != nil {
		return response.Error(err)
	}
	return a.page(ctx, "index", pageData{Files: files}, http.StatusOK)
}

func (a *App) showDocument(ctx *Context) handler.Response {
	name := ctx.Param("filename")

	content, ok, err := a.readDocument(ctx, name)
	if err != nil {
		return response.Error(err)
	}
	if !ok {
		return a.missing(ctx, name)
	}

	result, err := a.renderer.Render(name, content)
	if err != nil {
		return response.Error(err)
	}

	switch result.Kind {
	case render.Markdown:
		return a.page(ctx, "document", pageData{
			Title: name,
			Name:  name,
			HTML:  template.HTML(result.Body),
		}, http.StatusOK)
	default:
		return response.Bytes(result.Body, result.ContentType)
	}
}

func (a *App) newDocumentForm(ctx *Context) handler.Response {
	return a.page(ctx, "new", pageData{Title: "New document"}, http.StatusOK)
}

func (a *App) createDocument(ctx *Context) handler.Response {
	var form newDocumentForm
	if err := ctx.Bind(&form); err != nil {
		return response.Error(err)
	}
	name := form.Filename

	invalid := func(message string) handler.Response {
		return a.page(ctx, "new", pageData{
			Title: "New document",
			Name:  name,
			Flash: message,
		}, http.StatusUnprocessableEntity)
	}

	switch {
	case name == "":
		return invalid("A name is required.")
	case storage.ValidateName(name) != nil:
		return invalid(name + " is not a valid document name.")
	case !a.policy.Allows(name):
		return invalid(name + " is not an allowed document name.")
	}

	err := a.store.Create(ctx, name, nil)
	switch {
	case errors.Is(err, storage.ErrAlreadyExists):
		return invalid(name + " already exists.")
	case err != nil:
		return response.Error(err)
	}

	a.logEvent(ctx, "document.created", logger.Document(name))
	ctx.SetFlash(name + " has been created!")
	return response.Redirect("/")
}

func (a *App) editDocumentForm(ctx *Context) handler.Response {
	name := ctx.Param("filename")

	content, ok, err := a.readDocument(ctx, name)
	if err != nil {
		return response.Error(err)
	}
	if !ok {
		return a.missing(ctx, name)
	}

	return a.page(ctx, "edit", pageData{
		Title:   "Edit " + name,
		Name:    name,
		Content: string(content),
	}, http.StatusOK)
}

func (a *App) updateDocument(ctx *Context) handler.Response {
	name := ctx.Param("filename")

	var form editDocumentForm
	if err := ctx.Bind(&form); err != nil {
		return response.Error(err)
	}

	ok, err := a.documentExists(ctx, name)
	if err != nil {
		return response.Error(err)
	}
	if !ok {
		return a.missing(ctx, name)
	}

	if err := a.store.Write(ctx, name, []byte(form.Content)); err != nil {
		return response.Error(err)
	}

	a.logEvent(ctx, "document.updated", logger.Document(name), logger.Count("bytes", len(form.Content)))
	ctx.SetFlash(name + " has been updated.")
	return response.Redirect("/")
}

func (a *App) deleteDocument(ctx *Context) handler.Response {
	name := ctx.Param("filename")

	err := a.store.Delete(ctx, name)
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrInvalidName):
		return a.missing(ctx, name)
	case err != nil:
		return response.Error(err)
	}

	a.logEvent(ctx, "document.deleted", logger.Document(name))
	ctx.SetFlash(name + " has been deleted.")
	return response.Redirect("/")
}

// duplicateDocument copies a document to the first free "<stem>_copyN<ext>" name.
func (a *App) duplicateDocument(ctx *Context) handler.Response {
	name := ctx.Param("filename")

	content, ok, err := a.readDocument(ctx, name)
	if err != nil {
		return response.Error(err)
	}
	if !ok {
		return a.missing(ctx, name)
	}

	for n := 1; n <= maxCopies; n++ {
		copyName := storage.CopyName(name, n)
		err := a.store.Create(ctx, copyName, content)
		if errors.Is(err, storage.ErrAlreadyExists) {
			continue
		}
		if errors.Is(err, storage.ErrInvalidName) {
			// copy name too long
			break
		}
		if err != nil {
			return response.Error(err)
		}

		a.logEvent(ctx, "document.duplicated", logger.Document(copyName), logger.Key("source", name))
		ctx.SetFlash(copyName + " has been created from " + name + ".")
		return response.Redirect("/")
	}

	ctx.SetFlash(name + " could not be duplicated.")
	return response.Redirect("/")
}

// readDocument reads name, reporting missing documents and names that can
// never exist as ok == false.
func (a *App) readDocument(ctx *Context, name string) ([]byte, bool, error) {
	content, err := a.store.Read(ctx, name)
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrInvalidName):
		return nil, false, nil
	case err != nil:
		return nil, false, err
	}
	return content, true, nil
}

func (a *App) documentExists(ctx *Context, name string) (bool, error) {
	ok, err := a.store.Exists(ctx, name)
	if errors.Is(err, storage.ErrInvalidName) {
		return false, nil
	}
	return ok, err
}

func (a *App) missing(ctx *Context, name string) handler.Response {
	ctx.SetFlash(name + " does not exist.")
	return response.Redirect("/")
}
