package problems

import "github.com/misaki/kumora/internal/levels"

// family produces one problem for a worksheet within its level.
type family func(worksheet int, cfg levels.Config) *Problem

// families maps each level to its generator family. The range table
// picks the topic; the family picks operands and formats the question.
var families = map[levels.Level]family{
	levels.Level4A: generate4A,
	levels.Level3A: generate3A,
	levels.Level2A: generate2A,
	levels.LevelA:  generateA,
	levels.LevelB:  generateB,
	levels.LevelC:  generateC,
	levels.LevelD:  generateD,
	levels.LevelE:  generateE,
	levels.LevelF:  generateF,
}

// Generate produces one problem for the given level and worksheet
// number. It never fails: unknown levels fall back to the level A
// family and unknown subtypes fall back to each family's default
// sub-generator.
func Generate(level levels.Level, worksheet int) *Problem {
	cfg := levels.Info(level, worksheet)
	fam, ok := families[level]
	if !ok {
		fam = generateA
	}
	return fam(worksheet, cfg)
}

// GenerateSet produces count problems for one worksheet, avoiding
// repeated question text within the set. Operand ranges at the lowest
// levels are narrow, so after a bounded number of redraws duplicates
// are admitted rather than looping forever.
func GenerateSet(level levels.Level, worksheet, count int) []*Problem {
	if count < 1 {
		count = 1
	}

	seen := make(map[string]bool, count)
	out := make([]*Problem, 0, count)
	attempts := 0
	maxAttempts := count * 8

	for len(out) < count {
		p := Generate(level, worksheet)
		attempts++
		if seen[p.Question] && attempts < maxAttempts {
			continue
		}
		seen[p.Question] = true
		out = append(out, p)
	}
	return out
}
