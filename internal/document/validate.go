package document

import (
	"fmt"

	"github.com/hashicorp/go-multierror"

	dock "github.com/grindlemire/go-dock"
)

// Validate reports every problem in the document at once.
func (d *Document) Validate() error {
	var mErr *multierror.Error

	if d.Density < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("density must not be negative, got %v", d.Density))
	}
	if d.Viewport.Width < 0 || d.Viewport.Height < 0 {
		mErr = multierror.Append(mErr, fmt.Errorf("viewport must not be negative, got %dx%d",
			d.Viewport.Width, d.Viewport.Height))
	}

	names := map[string]string{}
	d.Root.validate("root", names, &mErr)

	return mErr.ErrorOrNil()
}

func (n *Node) validate(path string, names map[string]string, mErr **multierror.Error) {
	var errs *multierror.Error

	if n.Name != "" {
		if first, ok := names[n.Name]; ok {
			errs = multierror.Append(errs, fmt.Errorf("duplicate name %q, first used at %s", n.Name, first))
		} else {
			names[n.Name] = path
		}
	}
	if err := checkValue("width", n.Width); err != nil {
		errs = multierror.Append(errs, err)
	}
	if err := checkValue("height", n.Height); err != nil {
		errs = multierror.Append(errs, err)
	}
	if n.MinWidth < 0 || n.MinHeight < 0 {
		errs = multierror.Append(errs, fmt.Errorf("minimum size must not be negative"))
	}
	if negative(n.Margin) {
		errs = multierror.Append(errs, fmt.Errorf("margin must not be negative"))
	}
	if negative(n.Padding) {
		errs = multierror.Append(errs, fmt.Errorf("padding must not be negative"))
	}

	if errs != nil {
		*mErr = multierror.Append(*mErr, multierror.Prefix(errs, path+":"))
	}

	for i := range n.Children {
		child := &n.Children[i]
		childPath := fmt.Sprintf("%s.children[%d]", path, i)
		if child.Name != "" {
			childPath += "(" + child.Name + ")"
		}
		child.validate(childPath, names, mErr)
	}
}

func checkValue(field string, v dock.Value) error {
	switch v.Unit {
	case dock.UnitFixed:
		if v.Amount < 0 {
			return fmt.Errorf("%s must not be negative, got %v", field, v.Amount)
		}
	case dock.UnitPercent:
		if v.Amount < 0 || v.Amount > 100 {
			return fmt.Errorf("%s percentage must be within 0-100, got %v%%", field, v.Amount)
		}
	}
	return nil
}

func negative(e dock.Edges) bool {
	return e.Top < 0 || e.Right < 0 || e.Bottom < 0 || e.Left < 0
}
