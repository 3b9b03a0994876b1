package query

import (
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/cory-johannsen/cardex/internal/catalog"
)

// maxEnergyTokens is the number of Energy arguments a query may carry.
const maxEnergyTokens = 2

// Execute runs criterion c with argument text args over cat.
//
// Precondition: cat must not be nil.
// Postcondition: Returns matches in catalog order. A creature is appended once per
// match found while scanning it, so it may appear several times. cat is not modified.
// Errors are *UnknownCriterionError or *ArgumentError.
func Execute(cat *catalog.Catalog, c Criterion, args string) ([]*catalog.Creature, error) {
	if !c.Valid() {
		return nil, &UnknownCriterionError{Label: strconv.Itoa(int(c))}
	}
	args = strings.TrimSpace(args)
	if args == "" {
		return nil, &ArgumentError{Criterion: c, Err: ErrMissingArgument}
	}

	switch c {
	case Type:
		return byType(cat, args), nil
	case AttackDamage:
		threshold, err := strconv.Atoi(args)
		if err != nil {
			return nil, &ArgumentError{Criterion: c, Arg: args, Err: ErrNonNumericArgument}
		}
		return byDamage(cat, threshold), nil
	case HitPoints:
		hp, err := strconv.Atoi(args)
		if err != nil {
			return nil, &ArgumentError{Criterion: c, Arg: args, Err: ErrNonNumericArgument}
		}
		return byHP(cat, hp), nil
	case Ability:
		return byAbility(cat, args), nil
	case Stage:
		return byStage(cat, args), nil
	default:
		tokens := strings.Fields(args)
		if len(tokens) > maxEnergyTokens {
			return nil, &ArgumentError{Criterion: c, Arg: args, Err: ErrTooManyArguments}
		}
		matchers := make([]energyMatcher, 0, len(tokens))
		for _, tok := range tokens {
			m, err := newEnergyMatcher(tok)
			if err != nil {
				return nil, &ArgumentError{Criterion: c, Arg: tok, Err: err}
			}
			matchers = append(matchers, m)
		}
		return byEnergy(cat, matchers), nil
	}
}

func byType(cat *catalog.Catalog, typ string) []*catalog.Creature {
	var out []*catalog.Creature
	for _, cr := range cat.All() {
		if equalFold(cr.Type, typ) {
			out = append(out, cr)
		}
	}
	return out
}

func byDamage(cat *catalog.Catalog, threshold int) []*catalog.Creature {
	var out []*catalog.Creature
	for _, cr := range cat.All() {
		for _, a := range cr.Attacks {
			if !a.HasBaseDamage {
				continue
			}
			if a.BaseDamage >= threshold {
				out = append(out, cr)
			}
		}
	}
	return out
}

func byHP(cat *catalog.Catalog, hp int) []*catalog.Creature {
	var out []*catalog.Creature
	for _, cr := range cat.All() {
		if cr.HP == hp {
			out = append(out, cr)
		}
	}
	return out
}

func byAbility(cat *catalog.Catalog, name string) []*catalog.Creature {
	none := equalFold(name, "none")
	var out []*catalog.Creature
	for _, cr := range cat.All() {
		switch {
		case none:
			if cr.Ability == nil {
				out = append(out, cr)
			}
		case cr.Ability != nil && equalFold(cr.Ability.Name, name):
			out = append(out, cr)
		}
	}
	return out
}

// stageForArg maps a stage argument to the stage it selects.
func stageForArg(arg string) (catalog.Stage, bool) {
	switch {
	case equalFold(arg, "basic"):
		return catalog.StageBasic, true
	case arg == "1":
		return catalog.StageOne, true
	case arg == "2":
		return catalog.StageTwo, true
	}
	return "", false
}

func byStage(cat *catalog.Catalog, arg string) []*catalog.Creature {
	stage, ok := stageForArg(arg)
	if !ok {
		return nil
	}
	var out []*catalog.Creature
	for _, cr := range cat.All() {
		if cr.Stage == stage {
			out = append(out, cr)
		}
	}
	return out
}

// energyMatcher tests one Energy token against an energy cost: an all-digit
// token is a minimum cost, anything else an energy type name.
type energyMatcher struct {
	typ     string
	minCost int
	numeric bool
}

func newEnergyMatcher(tok string) (energyMatcher, error) {
	if !isDigits(tok) {
		return energyMatcher{typ: tok}, nil
	}
	n, err := strconv.Atoi(tok)
	if err != nil {
		return energyMatcher{}, ErrNonNumericArgument
	}
	return energyMatcher{minCost: n, numeric: true}, nil
}

func (m energyMatcher) match(e catalog.EnergyCost) bool {
	if m.numeric {
		return e.Cost >= m.minCost
	}
	return equalFold(e.Type, m.typ)
}

// byEnergy evaluates every matcher independently against every energy cost of
// every attack; each hit appends the creature once.
func byEnergy(cat *catalog.Catalog, matchers []energyMatcher) []*catalog.Creature {
	var out []*catalog.Creature
	for _, cr := range cat.All() {
		for _, a := range cr.Attacks {
			for _, e := range a.Energy {
				for _, m := range matchers {
					if m.match(e) {
						out = append(out, cr)
					}
				}
			}
		}
	}
	return out
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Result is the outcome of one query.
type Result struct {
	Criterion Criterion
	Args      string
	Creatures []*catalog.Creature
}

// Engine answers query Requests against a single catalog.
type Engine struct {
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// NewEngine creates an Engine over cat.
//
// Precondition: cat and logger must not be nil.
func NewEngine(cat *catalog.Catalog, logger *zap.Logger) *Engine {
	return &Engine{catalog: cat, logger: logger}
}

// Catalog returns the catalog the engine queries.
func (e *Engine) Catalog() *catalog.Catalog {
	return e.catalog
}

// Run resolves req's label and executes the query.
//
// Postcondition: Returns the Result, or an *UnknownCriterionError when the label
// does not resolve, or an *ArgumentError from Execute.
func (e *Engine) Run(req Request) (Result, error) {
	c, ok := Resolve(req.Label)
	if !ok {
		err := &UnknownCriterionError{Label: req.Label, Suggestion: Suggest(req.Label)}
		e.logger.Debug("unknown criterion", zap.String("label", req.Label))
		return Result{}, err
	}

	start := time.Now()
	creatures, err := Execute(e.catalog, c, req.RawArgs)
	if err != nil {
		e.logger.Debug("query rejected",
			zap.Stringer("criterion", c),
			zap.String("args", req.RawArgs),
			zap.Error(err),
		)
		return Result{}, err
	}
	e.logger.Debug("query executed",
		zap.Stringer("criterion", c),
		zap.String("args", req.RawArgs),
		zap.Int("matches", len(creatures)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return Result{Criterion: c, Args: req.RawArgs, Creatures: creatures}, nil
}
