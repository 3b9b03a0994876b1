package render

import (
	"fmt"
	"strings"

	"github.com/cory-johannsen/cardex/internal/catalog"
	"github.com/cory-johannsen/cardex/internal/query"
)

// ruleWidth is the number of asterisks separating creatures in a listing.
const ruleWidth = 25

// Creatures formats a result list, one block per entry, duplicates included.
func Creatures(list []*catalog.Creature, s Styler) string {
	if len(list) == 0 {
		return s.Colorize(Dim, "No creatures found!") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(s.Colorf(BrightWhite, "# of Creatures Found: %d", len(list)))
	b.WriteString("\n")
	for _, c := range list {
		b.WriteString(strings.Repeat("*", ruleWidth))
		b.WriteString("\n\n")
		b.WriteString(Creature(c, s))
	}
	return b.String()
}

// Creature formats a single creature block.
func Creature(c *catalog.Creature, s Styler) string {
	var b strings.Builder

	b.WriteString(s.Colorf(BrightYellow, "%s %dHP (%s)", c.Name, c.HP, c.Type))
	b.WriteString("\n")
	b.WriteString(string(c.Stage))
	if c.EvolvesFrom != "" {
		b.WriteString(" - Evolves from ")
		b.WriteString(c.EvolvesFrom)
	}
	b.WriteString("\n")

	b.WriteString(s.Colorize(Cyan, "Attacks:"))
	b.WriteString("\n")
	for _, a := range c.Attacks {
		fmt.Fprintf(&b, "\t%s - %s DMG (%s)\n", s.Colorize(BrightCyan, a.Name), a.Damage, energyList(a.Energy))
		if a.Description != "" {
			b.WriteString(a.Description)
			b.WriteString("\n")
		}
	}

	if c.Ability != nil {
		b.WriteString(s.Colorf(Magenta, "Ability: %s - %s", c.Ability.Name, c.Ability.Description))
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "Retreat Cost - %d\n\n", c.RetreatCost)
	return b.String()
}

func energyList(costs []catalog.EnergyCost) string {
	parts := make([]string, 0, len(costs))
	for _, e := range costs {
		parts = append(parts, fmt.Sprintf("%s-%d", e.Type, e.Cost))
	}
	return strings.Join(parts, ", ")
}

// criterionHelp describes each criterion by its canonical label.
var criterionHelp = map[string]string{
	"Type":    `All creatures of the given type. Example: "fire"`,
	"Damage":  `All creatures with an attack doing at least the given damage. Example: "40"`,
	"HP":      `All creatures with exactly the given HP. Example: "60"`,
	"Ability": `All creatures with the named ability, or with none. Example: "Shell Armor" or "none"`,
	"Stage":   `All creatures of the given stage. Example: "basic", "1" or "2"`,
	"Energy":  `All creatures with attacks needing the given cost and/or type. Example: "2 Colorless", "2" or "Colorless"`,
}

// Help describes the query syntax and every criterion query.Labels reports.
func Help(s Styler) string {
	labels := query.Labels()
	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, strings.ToLower(label))
	}

	var b strings.Builder
	b.WriteString(s.Colorize(Bold, "Search criteria: "+strings.Join(names, ", ")))
	b.WriteString("\n")
	for i, label := range labels {
		fmt.Fprintf(&b, "  %s %s\n", s.Colorf(BrightCyan, "%-8s", names[i]), criterionHelp[label])
	}
	b.WriteString("\nEnter a query as <CRITERIA> <ARGUMENT_1> (<ARGUMENT_2>), e.g. \"type fire\".\n")
	b.WriteString("Type \"help\" to see this again or \"quit\" to leave.\n")
	return b.String()
}

// Error formats a query error for the user.
func Error(err error, s Styler) string {
	return s.Colorf(Red, "Error: %v", err) + "\n"
}
