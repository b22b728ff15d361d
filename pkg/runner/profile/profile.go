package profile

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/plannow/pkg/app"
	"tableflip.dev/plannow/pkg/printers"
)

// Profile shows the signed-in user's profile, updating the username or
// picture first when they are set.
type Profile struct {
	Username *string
	Picture  *string
	JSON     bool
	Out      io.Writer

	Service *app.Service
}

func (n *Profile) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show profile, no service")
	}
	if n.Username != nil {
		if err := n.Service.SetUsername(ctx, *n.Username); err != nil {
			return err
		}
	}
	if n.Picture != nil {
		if err := n.Service.SetPicture(ctx, *n.Picture); err != nil {
			return err
		}
	}

	p, err := n.Service.Profile(ctx)
	if err != nil {
		return err
	}
	if n.JSON {
		return printers.JSON(n.Out, p)
	}
	printers.New(n.Out, false).Profile(p)
	return nil
}
