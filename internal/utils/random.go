package utils

import (
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/google/uuid"
	"github.com/sysu-ecnc-dev/sprint-planner/backend/internal/domain"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var commonFirstNames = []string{
	"Ahmet", "Mehmet", "Ayşe", "Fatma", "Zeynep", "Elif", "Mustafa", "Emre",
	"Özge", "Çağla", "Gökhan", "Şule", "İlker", "Burak", "Ece", "Oğuz",
}

var commonLastNames = []string{
	"Yılmaz", "Kaya", "Demir", "Şahin", "Çelik", "Yıldız", "Öztürk", "Aydın",
	"Arslan", "Doğan", "Kılıç", "Koç", "Güneş", "Erdoğan", "Aksoy", "Uçar",
}

var taskVerbs = []string{"Ekran", "Servis", "Rapor", "Entegrasyon", "Raporlama", "Bildirim"}
var taskSubjects = []string{"müşteri kaydı", "fatura", "sipariş", "kampanya", "ödeme", "kullanıcı yetkisi"}

var roles = []domain.Role{
	domain.RoleAnalyst,
	domain.RoleDeveloper,
}

func GenerateRandomRole() domain.Role {
	return roles[rand.Intn(len(roles))]
}

// dotless ı has no decomposition, so it is mapped before the marks are stripped
var asciiFold = transform.Chain(
	runes.Map(func(r rune) rune {
		if r == 'ı' {
			return 'i'
		}
		return r
	}),
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// ToASCII strips Turkish diacritics, e.g. "Şükrü Çağlar" becomes "Sukru Caglar".
func ToASCII(s string) string {
	out, _, err := transform.String(asciiFold, s)
	if err != nil {
		return s
	}
	return out
}

// GenerateLDAP builds a login name from the first letter of the first name and the
// last name, lower-cased and folded to ASCII.
func GenerateLDAP(firstName, lastName string) string {
	first := []rune(strings.ToLower(ToASCII(firstName)))
	last := strings.ToLower(ToASCII(strings.ReplaceAll(lastName, " ", "")))
	if len(first) == 0 {
		return last
	}
	return string(first[0]) + last
}

func GenerateRandomPerson(role domain.Role) *domain.Person {
	firstName := commonFirstNames[rand.Intn(len(commonFirstNames))]
	lastName := commonLastNames[rand.Intn(len(commonLastNames))]

	return &domain.Person{
		ID:        uuid.NewString(),
		FirstName: firstName,
		LastName:  lastName,
		Role:      role,
		LDAP:      GenerateLDAP(firstName, lastName),
	}
}

// randomSubset picks up to limit ids from people with the given role.
func randomSubset(people []*domain.Person, role domain.Role, limit int) domain.IDSet {
	var ids []string
	for _, p := range people {
		if p.Role == role {
			ids = append(ids, p.ID)
		}
	}
	rand.Shuffle(len(ids), func(i, j int) { ids[i], ids[j] = ids[j], ids[i] })

	if len(ids) == 0 {
		return domain.NewIDSet()
	}
	n := rand.Intn(min(limit, len(ids))) + 1
	return domain.NewIDSet(ids[:n]...)
}

// GenerateRandomTask returns a task assigned to existing people. Costs are whole hours.
func GenerateRandomTask(people []*domain.Person, components, targets []string) *domain.PlanningTask {
	task := &domain.PlanningTask{
		ID:                   uuid.NewString(),
		TaskName:             fmt.Sprintf("%s: %s", taskVerbs[rand.Intn(len(taskVerbs))], taskSubjects[rand.Intn(len(taskSubjects))]),
		SP:                   float64(rand.Intn(13) + 1),
		CurrentStatus:        domain.TaskStatuses[rand.Intn(len(domain.TaskStatuses))],
		ResponsibleAnalyst:   randomSubset(people, domain.RoleAnalyst, 2),
		ResponsibleDeveloper: randomSubset(people, domain.RoleDeveloper, 2),
		AnalysisCost:         float64(rand.Intn(16) + 1),
		SoftwareCost:         float64(rand.Intn(40) + 1),
		AnalysisTaskSP:       float64(rand.Intn(5)),
		SoftwareTaskSP:       float64(rand.Intn(8)),
		TestTaskSP:           float64(rand.Intn(3)),
	}

	if len(components) > 0 {
		task.Component = components[rand.Intn(len(components))]
	}
	if len(targets) > 0 {
		task.SprintEndTarget = targets[rand.Intn(len(targets))]
	}

	return task
}

func GenerateRandomTasks(n int, people []*domain.Person, components, targets []string) []*domain.PlanningTask {
	tasks := make([]*domain.PlanningTask, n)
	for i := range tasks {
		tasks[i] = GenerateRandomTask(people, components, targets)
	}
	return tasks
}

func GenerateRandomLeave(person *domain.Person) *domain.PersonLeave {
	leaveType := domain.LeaveTypeLeave
	if rand.Intn(3) == 0 {
		leaveType = domain.LeaveTypeTraining
	}

	return &domain.PersonLeave{
		ID:       uuid.NewString(),
		PersonID: person.ID,
		Type:     leaveType,
		Hours:    float64((rand.Intn(4) + 1) * 4),
	}
}
