package cli

import (
	"fmt"

	"github.com/lifelens/lifelens/internal/coach"
)

type InsightCmd struct{}

func (c *InsightCmd) Run(ctx *Context) error {
	entries, err := ctx.Store.GetEntries()
	if err != nil {
		return fmt.Errorf("failed to read entries: %w", err)
	}

	fmt.Println(RenderInsight(coach.Generate(entries)))
	return nil
}
