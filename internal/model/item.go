package model

// DescriptionLimit caps descriptions in the edit screen. The store does not
// enforce it.
const DescriptionLimit = 100

// Todo is the domain model for a todo entry.
type Todo struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Completed   bool   `json:"isCompleted"`
}

// Seed returns the records a fresh store starts with.
func Seed() []Todo {
	return []Todo{
		{
			ID:          "1",
			Name:        "Learn React Native",
			Description: "Complete the React Native tutorial",
		},
		{
			ID:          "2",
			Name:        "Build Todo App",
			Description: "Create a simple todo list application",
			Completed:   true,
		},
	}
}

// Stats counts completed and pending entries.
func Stats(todos []Todo) (done, pending int) {
	for _, t := range todos {
		if t.Completed {
			done++
		} else {
			pending++
		}
	}
	return
}
