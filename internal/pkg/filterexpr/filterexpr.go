// Package filterexpr evaluates user supplied boolean expressions against
// drop records, e.g. `Raid == "PBHL" && Chest == "Host"`.
package filterexpr

import (
	"github.com/antonmedv/expr"
	"github.com/antonmedv/expr/vm"
	"github.com/pkg/errors"

	"github.com/raidlog/droptracker/internal/model"
)

var ErrInvalidExpr = errors.New("invalid filter expression")

// Record is the environment an expression is evaluated in. Enum fields are
// exposed by name.
type Record struct {
	DropID    int
	Timestamp string
	Raid      string
	Item      string
	Chest     string
	Honors    string
}

func recordOf(d model.ItemDrop) Record {
	return Record{
		DropID:    int(d.DropID),
		Timestamp: d.Timestamp,
		Raid:      d.Raid.String(),
		Item:      d.Item.String(),
		Chest:     d.Chest.String(),
		Honors:    d.Honors.String,
	}
}

type Filter struct {
	source  string
	program *vm.Program
}

// Compile type-checks source against Record and requires it to yield a bool.
func Compile(source string) (*Filter, error) {
	program, err := expr.Compile(source, expr.Env(Record{}), expr.AsBool())
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidExpr, "%s", err)
	}
	return &Filter{source: source, program: program}, nil
}

func (f *Filter) String() string {
	return f.source
}

func (f *Filter) Match(d model.ItemDrop) (bool, error) {
	out, err := expr.Run(f.program, recordOf(d))
	if err != nil {
		return false, errors.Wrapf(err, "failed to evaluate %q on drop %d", f.source, d.DropID)
	}
	matched, ok := out.(bool)
	if !ok {
		return false, errors.Errorf("filter %q yielded %T instead of bool", f.source, out)
	}
	return matched, nil
}

// Select returns the records matched by f, preserving order.
func (f *Filter) Select(records []model.ItemDrop) ([]model.ItemDrop, error) {
	out := make([]model.ItemDrop, 0, len(records))
	for _, d := range records {
		ok, err := f.Match(d)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, d)
		}
	}
	return out, nil
}
