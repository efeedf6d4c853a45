package executor

import (
	"fmt"

	"github.com/vektah/gqlparser/v2/ast"
)

// fieldGroup is every field node sharing one response key.
type fieldGroup struct {
	key    string
	fields []*ast.Field
}

type groupedFields struct {
	groups []*fieldGroup
	index  map[string]int
}

func (g *groupedFields) add(key string, f *ast.Field) {
	if i, ok := g.index[key]; ok {
		g.groups[i].fields = append(g.groups[i].fields, f)
		return
	}
	g.index[key] = len(g.groups)
	g.groups = append(g.groups, &fieldGroup{key: key, fields: []*ast.Field{f}})
}

func (g *groupedFields) keys() []string {
	keys := make([]string, len(g.groups))
	for i, group := range g.groups {
		keys[i] = group.key
	}
	return keys
}

func (ec *execContext) collectFields(def *ast.Definition, set ast.SelectionSet) (*groupedFields, error) {
	out := &groupedFields{index: map[string]int{}}
	if err := ec.collectInto(out, def, set, map[string]bool{}); err != nil {
		return nil, err
	}
	return out, nil
}

func (ec *execContext) collectSubfields(def *ast.Definition, fields []*ast.Field) (*groupedFields, error) {
	out := &groupedFields{index: map[string]int{}}
	visited := map[string]bool{}
	for _, f := range fields {
		if err := ec.collectInto(out, def, f.SelectionSet, visited); err != nil {
			return nil, err
		}
	}
	return out, nil
}

func (ec *execContext) collectInto(out *groupedFields, def *ast.Definition, set ast.SelectionSet, visited map[string]bool) error {
	for _, sel := range set {
		switch sel := sel.(type) {
		case *ast.Field:
			include, err := ec.shouldInclude(sel.Directives)
			if err != nil {
				return err
			}
			if !include {
				continue
			}
			key := sel.Alias
			if key == "" {
				key = sel.Name
			}
			out.add(key, sel)

		case *ast.InlineFragment:
			include, err := ec.shouldInclude(sel.Directives)
			if err != nil {
				return err
			}
			if !include || !ec.typeConditionApplies(def, sel.TypeCondition) {
				continue
			}
			if err := ec.collectInto(out, def, sel.SelectionSet, visited); err != nil {
				return err
			}

		case *ast.FragmentSpread:
			if visited[sel.Name] {
				continue
			}
			include, err := ec.shouldInclude(sel.Directives)
			if err != nil {
				return err
			}
			if !include {
				continue
			}
			visited[sel.Name] = true

			fragment := sel.Definition
			if fragment == nil {
				fragment = ec.doc.Fragments.ForName(sel.Name)
			}
			if fragment == nil {
				return fmt.Errorf("unknown fragment %q", sel.Name)
			}
			if !ec.typeConditionApplies(def, fragment.TypeCondition) {
				continue
			}
			if err := ec.collectInto(out, def, fragment.SelectionSet, visited); err != nil {
				return err
			}
		}
	}
	return nil
}

// shouldInclude evaluates @skip and @include.
func (ec *execContext) shouldInclude(directives ast.DirectiveList) (bool, error) {
	if d := directives.ForName("skip"); d != nil {
		skip, err := ec.directiveIf(d)
		if err != nil {
			return false, err
		}
		if skip {
			return false, nil
		}
	}
	if d := directives.ForName("include"); d != nil {
		include, err := ec.directiveIf(d)
		if err != nil {
			return false, err
		}
		if !include {
			return false, nil
		}
	}
	return true, nil
}

func (ec *execContext) directiveIf(d *ast.Directive) (bool, error) {
	arg := d.Arguments.ForName("if")
	if arg == nil {
		return false, fmt.Errorf("@%s requires an if argument", d.Name)
	}
	v, err := arg.Value.Value(ec.vars)
	if err != nil {
		return false, err
	}
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("@%s(if:) must be a Boolean", d.Name)
	}
	return b, nil
}

func (ec *execContext) typeConditionApplies(def *ast.Definition, condition string) bool {
	if condition == "" || condition == def.Name {
		return true
	}
	cond := ec.exec.schema.Types[condition]
	if cond == nil || !cond.IsAbstractType() {
		return false
	}
	for _, possible := range ec.exec.schema.GetPossibleTypes(cond) {
		if possible.Name == def.Name {
			return true
		}
	}
	return false
}
