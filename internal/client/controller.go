package client

import (
	"context"

	"github.com/rs/zerolog/log"

	"github.com/ziadkadry99/brandcraft/internal/brand"
)

// AlertMessage is shown once for any failed generation.
const AlertMessage = "Something went wrong. Please try again."

// View is the part of the UI the Controller drives directly.
type View interface {
	SetBusy(busy bool)
	Alert(msg string)
	ScrollToResults()
}

// Renderer draws a result. style is the value of the style control at submit
// time and may be empty.
type Renderer interface {
	Render(res *brand.Result, style string)
}

// Generator performs the network call for a submit.
type Generator interface {
	Generate(ctx context.Context, req brand.Request) (*brand.Result, error)
}

// Controller handles form submits.
type Controller struct {
	gen      Generator
	session  *Session
	view     View
	renderer Renderer
}

// NewController wires a Controller.
func NewController(gen Generator, session *Session, view View, renderer Renderer) *Controller {
	return &Controller{gen: gen, session: session, view: view, renderer: renderer}
}

// Submit sends form to the server. On success the result is stored and
// rendered; on failure the view shows AlertMessage and the session is left
// alone. The view is always returned to idle.
func (c *Controller) Submit(ctx context.Context, form brand.Request) error {
	c.view.SetBusy(true)
	defer c.view.SetBusy(false)

	res, err := c.gen.Generate(ctx, form)
	if err != nil {
		log.Warn().Err(err).Msg("generation failed")
		c.view.Alert(AlertMessage)
		return err
	}

	c.session.Store(res)
	c.renderer.Render(res, form.Style)
	c.view.ScrollToResults()
	return nil
}
