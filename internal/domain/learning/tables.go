package learning

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

var progression = map[string][]string{
	"Python":     {"Data Science", "Machine Learning", "Django", "Flask"},
	"JavaScript": {"React", "Node.js", "Vue.js", "Angular"},
	"HTML/CSS":   {"JavaScript", "React", "UI/UX Design"},
	"SQL":        {"Data Science", "Database Administration", "Data Analytics"},
}

var marketDemand = []string{
	"Python", "JavaScript", "React", "Node.js", "Machine Learning",
	"Data Science", "UI/UX Design", "Cloud Computing", "DevOps",
}

var difficulty = map[string]Difficulty{
	"HTML/CSS":         DifficultyBeginner,
	"JavaScript":       DifficultyIntermediate,
	"Python":           DifficultyIntermediate,
	"Machine Learning": DifficultyAdvanced,
	"Data Science":     DifficultyAdvanced,
	"React":            DifficultyIntermediate,
	"Node.js":          DifficultyIntermediate,
}

// DefaultMarketSkills returns a copy of the in-demand skill list.
func DefaultMarketSkills() []string {
	out := make([]string, len(marketDemand))
	copy(out, marketDemand)
	return out
}

// NextSkills returns the skills that naturally follow skill, if any.
func NextSkills(skill string) []string {
	next, ok := progression[skill]
	if !ok {
		return nil
	}
	out := make([]string, len(next))
	copy(out, next)
	return out
}

func SkillDifficulty(skill string) Difficulty {
	if d, ok := difficulty[skill]; ok {
		return d
	}
	return DifficultyIntermediate
}
