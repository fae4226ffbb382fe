package main

import (
	"context"
	"fmt"
)

// answer is one scripted reply to Input or Password. When pick is set the
// driver asks the prompt's Suggest hook for text and answers with the
// suggestion at pick.
type answer struct {
	text string
	pick *int
}

func typed(text string) answer { return answer{text: text} }

func picked(text string, i int) answer { return answer{text: text, pick: &i} }

// scriptedDriver replays canned answers. A reply rejected by the prompt's
// validator is recorded and the next reply is used, as a re-prompt would.
type scriptedDriver struct {
	answers  []answer
	confirms []bool
	selects  []int
	multis   [][]int

	messages  []string
	rejected  []string
	suggested [][]string
	defaults  [][]int
}

func (d *scriptedDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	d.messages = append(d.messages, cfg.Message)
	for {
		if len(d.answers) == 0 {
			return "", fmt.Errorf("unexpected prompt %q", cfg.Message)
		}
		a := d.answers[0]
		d.answers = d.answers[1:]

		text := a.text
		if a.pick != nil {
			if cfg.Suggest == nil {
				return "", fmt.Errorf("prompt %q has no suggestions", cfg.Message)
			}
			options := cfg.Suggest(a.text)
			d.suggested = append(d.suggested, options)
			if *a.pick >= len(options) {
				return "", fmt.Errorf("prompt %q: no suggestion %d in %v", cfg.Message, *a.pick, options)
			}
			text = options[*a.pick]
		}
		if cfg.Validator != nil {
			if err := cfg.Validator(text); err != nil {
				d.rejected = append(d.rejected, text)
				continue
			}
		}
		return text, nil
	}
}

func (d *scriptedDriver) Password(ctx context.Context, cfg InputConfig) (string, error) {
	return d.Input(ctx, cfg)
}

func (d *scriptedDriver) Confirm(_ context.Context, cfg ConfirmConfig) (bool, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.confirms) == 0 {
		return false, fmt.Errorf("unexpected confirm %q", cfg.Message)
	}
	v := d.confirms[0]
	d.confirms = d.confirms[1:]
	return v, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.messages = append(d.messages, cfg.Message)
	if len(d.selects) == 0 {
		return 0, fmt.Errorf("unexpected select %q", cfg.Message)
	}
	v := d.selects[0]
	d.selects = d.selects[1:]
	return v, nil
}

func (d *scriptedDriver) MultiSelect(_ context.Context, cfg SelectConfig) ([]int, error) {
	d.messages = append(d.messages, cfg.Message)
	d.defaults = append(d.defaults, cfg.Defaults)
	if len(d.multis) == 0 {
		return nil, fmt.Errorf("unexpected multiselect %q", cfg.Message)
	}
	v := d.multis[0]
	d.multis = d.multis[1:]
	return v, nil
}
