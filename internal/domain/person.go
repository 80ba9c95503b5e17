package domain

type Role string

const (
	RoleAnalyst   Role = "Analist"
	RoleDeveloper Role = "Developer"
)

type Person struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      Role   `json:"role"`
	LDAP      string `json:"ldap"`
}

func (p *Person) FullName() string {
	return p.FirstName + " " + p.LastName
}

type AppConfig struct {
	DailyPlanningHour string    `json:"dailyPlanningHour"`
	People            []*Person `json:"people"`
}

func (c *AppConfig) FindPerson(id string) (*Person, int) {
	for i, p := range c.People {
		if p.ID == id {
			return p, i
		}
	}
	return nil, -1
}

// PersonIndex returns a lookup of the configured people by id.
func PersonIndex(people []*Person) map[string]*Person {
	index := make(map[string]*Person, len(people))
	for _, p := range people {
		index[p.ID] = p
	}
	return index
}
