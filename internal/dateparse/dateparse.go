package dateparse

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/bvtracker/internal/ledger"
	"github.com/olebedev/when"
	"github.com/olebedev/when/rules/common"
	"github.com/olebedev/when/rules/en"
)

var layouts = []string{"2006-01-02", "02-01-2006", "2/1/2006"}

// Parser turns user input such as "2026-02-15", "15-02-2026", "yesterday"
// or "last saturday" into a calendar date.
type Parser struct {
	w   *when.Parser
	now func() time.Time
}

// New creates a Parser relative to now.
func New(now func() time.Time) *Parser {
	w := when.New(nil)
	w.Add(en.All...)
	w.Add(common.All...)
	return &Parser{w: w, now: now}
}

// Parse resolves input to a date. Empty input means today.
func (p *Parser) Parse(input string) (ledger.Date, error) {
	input = strings.TrimSpace(input)
	base := p.now()
	if input == "" {
		return ledger.NewDate(base), nil
	}

	for _, layout := range layouts {
		if t, err := time.ParseInLocation(layout, input, base.Location()); err == nil {
			return ledger.NewDate(t), nil
		}
	}

	r, err := p.w.Parse(strings.ToLower(input), base)
	if err != nil {
		log.Debug("Natural date parsing failed", "input", input, "error", err)
	}
	if r == nil {
		return "", fmt.Errorf("could not recognize date: %s", input)
	}
	return ledger.NewDate(r.Time), nil
}
