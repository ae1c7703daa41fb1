package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/yanqian/styling-advisor/internal/domain/styling"
)

// Session is the wizard state. Each step receives the current value and returns the next one.
type Session struct {
	Unit      string
	Bust      string
	Waist     string
	Hips      string
	HighHip   string
	Undertone string
	Occasion  string
	City      string
	Advice    bool
	Save      bool
}

// Request converts a completed session into a service request.
func (s Session) Request() (styling.Request, error) {
	raw, err := styling.ParseRawMeasurements(s.Bust, s.Waist, s.Hips, s.HighHip, s.Unit)
	if err != nil {
		return styling.Request{}, err
	}
	return styling.Request{
		Bust:          raw.Bust,
		Waist:         raw.Waist,
		Hips:          raw.Hips,
		HighHip:       raw.HighHip,
		Unit:          raw.Unit,
		Undertone:     s.Undertone,
		Occasion:      s.Occasion,
		City:          s.City,
		IncludeAdvice: s.Advice,
		Save:          s.Save,
	}, nil
}

type wizardStep func(p *prompter, s Session) (Session, error)

var errInputEnded = errors.New("input ended before the wizard finished")

func newWizardCommand(factory Factory) *cobra.Command {
	return &cobra.Command{
		Use:   "wizard",
		Short: "Answer a few questions and get styling advice",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			advisor, err := advisorFrom(factory)
			if err != nil {
				return err
			}
			return runWizard(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), advisor)
		},
	}
}

func runWizard(ctx context.Context, in io.Reader, out io.Writer, advisor styling.Service) error {
	p := &prompter{scanner: bufio.NewScanner(in), out: out}
	fmt.Fprintln(out, "Welcome to the styling advisor. Press enter to skip optional questions.")

	session := Session{}
	for _, step := range []wizardStep{
		askMeasurements,
		askUndertone,
		askOccasion,
		askCity,
		askAdvice,
		askSave,
	} {
		var err error
		if session, err = step(p, session); err != nil {
			return err
		}
	}

	req, err := session.Request()
	if err != nil {
		return err
	}
	resp, err := advisor.Recommend(ctx, req)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	renderResponse(out, resp)
	return nil
}

func askMeasurements(p *prompter, s Session) (Session, error) {
	for {
		unit, err := p.ask("Unit (inches/cm) [inches]: ")
		if err != nil {
			return s, err
		}
		if _, err := styling.ParseUnit(unit); err != nil {
			p.warn(err)
			continue
		}
		next := s
		next.Unit = unit
		if next.Bust, err = p.ask("Bust: "); err != nil {
			return s, err
		}
		if next.Waist, err = p.ask("Waist: "); err != nil {
			return s, err
		}
		if next.Hips, err = p.ask("Hips: "); err != nil {
			return s, err
		}
		if next.HighHip, err = p.ask("High hip (optional): "); err != nil {
			return s, err
		}
		raw, err := styling.ParseRawMeasurements(next.Bust, next.Waist, next.Hips, next.HighHip, next.Unit)
		if err == nil {
			_, err = styling.Normalize(raw)
		}
		if err != nil {
			p.warn(err)
			continue
		}
		return next, nil
	}
}

func askUndertone(p *prompter, s Session) (Session, error) {
	for {
		answer, err := p.ask("Skin undertone (warm/cool/neutral, optional): ")
		if err != nil {
			return s, err
		}
		if _, err := styling.ParseUndertone(answer); err != nil {
			p.warn(err)
			continue
		}
		s.Undertone = answer
		return s, nil
	}
}

func askOccasion(p *prompter, s Session) (Session, error) {
	answer, err := p.ask("Occasion (optional): ")
	s.Occasion = answer
	return s, err
}

func askCity(p *prompter, s Session) (Session, error) {
	answer, err := p.ask("City for weather (optional): ")
	s.City = answer
	return s, err
}

func askAdvice(p *prompter, s Session) (Session, error) {
	yes, err := p.confirm("Ask the stylist for extra advice? [y/N]: ")
	s.Advice = yes
	return s, err
}

func askSave(p *prompter, s Session) (Session, error) {
	yes, err := p.confirm("Save this outfit? [y/N]: ")
	s.Save = yes
	return s, err
}

type prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

func (p *prompter) ask(question string) (string, error) {
	fmt.Fprint(p.out, question)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", errInputEnded
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

func (p *prompter) confirm(question string) (bool, error) {
	for {
		answer, err := p.ask(question)
		if err != nil {
			return false, err
		}
		switch strings.ToLower(answer) {
		case "", "n", "no":
			return false, nil
		case "y", "yes":
			return true, nil
		}
		fmt.Fprintln(p.out, "Please answer y or n.")
	}
}

func (p *prompter) warn(err error) {
	fmt.Fprintf(p.out, "  %s\n", err)
}
