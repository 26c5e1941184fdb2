package dimacsio

import (
	"fmt"

	"github.com/rhartert/dimacs"
)

// ReadModels parses a ".cnf.models" fixture: one model per line, each using
// the same signed-literal convention as a DIMACS clause. It is used only by
// tests to load the expected models for a given instance, never by the
// solver itself.
func ReadModels(filename string) ([][]bool, error) {
	r, err := open(filename, false)
	if err != nil {
		return nil, fmt.Errorf("dimacsio: opening %q: %w", filename, err)
	}
	defer r.Close()

	b := &modelBuilder{}
	if err := dimacs.ReadBuilder(r, b); err != nil {
		return nil, fmt.Errorf("dimacsio: parsing %q: %w", filename, err)
	}
	return b.models, nil
}

type modelBuilder struct {
	models [][]bool
}

func (b *modelBuilder) Problem(_ string, _ int, _ int) error {
	return fmt.Errorf("dimacsio: model fixtures must not contain a problem line")
}

func (b *modelBuilder) Comment(_ string) error {
	return nil
}

func (b *modelBuilder) Clause(lits []int) error {
	model := make([]bool, len(lits))
	for i, l := range lits {
		model[i] = l > 0
	}
	b.models = append(b.models, model)
	return nil
}
