package rewrite

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/tristendillon/pagemigrate/core/logger"
)

var ErrInvalidUTF8 = errors.New("content is not valid UTF-8")

type Result struct {
	Text string
	// Applied lists, in order, the rules that changed the text.
	Applied []string
}

func (r Result) Changed() bool {
	return len(r.Applied) > 0
}

type Pipeline struct {
	rules []Rule
}

func NewPipeline() *Pipeline {
	return &Pipeline{rules: Rules()}
}

// NewPipelineWithRules is used by tests to exercise a subset or a
// reordering of the rules.
func NewPipelineWithRules(rules ...Rule) *Pipeline {
	return &Pipeline{rules: rules}
}

func (p *Pipeline) Rules() []Rule {
	return p.rules
}

// Run applies the rules to text. CRLF input is normalized to LF first so
// line-anchored patterns match, and CRLF is restored on the way out.
func (p *Pipeline) Run(text string) Result {
	crlf := strings.Contains(text, "\r\n")
	if crlf {
		text = strings.ReplaceAll(text, "\r\n", "\n")
	}

	res := Result{Text: text}
	for _, rule := range p.rules {
		next := rule.Apply(res.Text)
		if next != res.Text {
			logger.Debug("rule %s changed %d -> %d bytes", rule.Name, len(res.Text), len(next))
			res.Applied = append(res.Applied, rule.Name)
		}
		res.Text = next
	}

	if crlf {
		res.Text = strings.ReplaceAll(res.Text, "\n", "\r\n")
	}
	return res
}

// RunBytes validates encoding before running the rules.
func (p *Pipeline) RunBytes(src []byte) (Result, error) {
	if !utf8.Valid(src) {
		return Result{}, ErrInvalidUTF8
	}
	return p.Run(string(src)), nil
}
