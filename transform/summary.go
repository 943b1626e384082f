package transform

import "github.com/teranos/nativegen/decl"

// Summary describes an overload for inspection.
type Summary struct {
	Name        string             `yaml:"name" json:"name"`
	Description string             `yaml:"description,omitempty" json:"description,omitempty"`
	Mode        string             `yaml:"mode" json:"mode"`
	Returns     string             `yaml:"returns" json:"returns"`
	Params      []string           `yaml:"params" json:"params"`
	Transforms  []TransformSummary `yaml:"transforms,omitempty" json:"transforms,omitempty"`
}

// TransformSummary is one active transform of an overload.
type TransformSummary struct {
	Element   string `yaml:"element" json:"element"`
	Transform string `yaml:"transform" json:"transform"`
}

// Summary renders the signature and transforms of the overload.
func (o Overload) Summary(fn *decl.Function) Summary {
	ctx := o.Context(fn)
	s := Summary{
		Name:        o.Name,
		Description: o.Description,
		Mode:        o.Mode.String(),
		Returns:     ReturnTypeOf(ctx),
		Params:      Signature(ctx),
	}
	if s.Params == nil {
		s.Params = []string{}
	}
	o.Set.Each(func(e decl.Element, t Transform) {
		s.Transforms = append(s.Transforms, TransformSummary{Element: e.ElementName(), Transform: t.String()})
	})
	return s
}
