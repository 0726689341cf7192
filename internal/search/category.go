package search

type Category string

const (
	CategoryProgramming Category = "programming"
	CategoryDesign      Category = "design"
	CategoryData        Category = "data"
	CategoryMarketing   Category = "marketing"
	CategoryOther       Category = "other"
)

var categorySkills = map[Category][]string{
	CategoryProgramming: {"Python", "JavaScript", "Java", "C++", "React", "Node.js"},
	CategoryDesign:      {"UI/UX", "Graphic Design", "Adobe Photoshop", "Figma"},
	CategoryData:        {"Data Science", "Machine Learning", "SQL", "Excel", "Tableau"},
	CategoryMarketing:   {"Digital Marketing", "SEO", "Content Writing", "Social Media"},
}

var skillCategory = buildSkillCategory()

func buildSkillCategory() map[string]Category {
	out := make(map[string]Category)
	for cat, skills := range categorySkills {
		for _, s := range skills {
			out[s] = cat
		}
	}
	return out
}

// Categorize looks the skill up by exact name.
func Categorize(skill string) Category {
	if c, ok := skillCategory[skill]; ok {
		return c
	}
	return CategoryOther
}

// CategorizedSkills lists the skills known to each category.
func CategorizedSkills() map[Category][]string {
	out := make(map[Category][]string, len(categorySkills))
	for cat, skills := range categorySkills {
		cp := make([]string, len(skills))
		copy(cp, skills)
		out[cat] = cp
	}
	return out
}
