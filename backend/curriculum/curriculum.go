package curriculum

// TotalDays is the length of the fixed two-year calendar.
const TotalDays = 730

type Problem struct {
	Name       string `json:"name"`
	Difficulty string `json:"difficulty"`
	Platform   string `json:"platform"`
}

type DSATopic struct {
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Problems    []Problem `json:"problems"`
}

type DevTopic struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Tasks       []string `json:"tasks"`
}

// DSATopicFor returns the DSA topic for a day number. The catalog is
// shorter than the calendar and wraps around.
func DSATopicFor(day int) DSATopic {
	return dsaTopics[(day-1)%len(dsaTopics)]
}

// DevTopicFor returns the development topic for a day number.
func DevTopicFor(day int) DevTopic {
	return devTopics[(day-1)%len(devTopics)]
}

// DSAChecklistLen is the number of sub-tasks on the day's DSA track.
func DSAChecklistLen(day int) int {
	return len(DSATopicFor(day).Problems)
}

// DevChecklistLen is the number of sub-tasks on the day's dev track.
func DevChecklistLen(day int) int {
	return len(DevTopicFor(day).Tasks)
}
