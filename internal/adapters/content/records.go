package content

// File layouts for the four content tables. Field names follow the YAML keys so the
// tables stay readable for whoever edits the storylines.

type teamsFile struct {
	Teams []teamRecord `yaml:"teams" validate:"required,min=1,dive"`
}

type colorsRecord struct {
	Primary   string `yaml:"primary" validate:"omitempty,hexcolor"`
	Secondary string `yaml:"secondary" validate:"omitempty,hexcolor"`
	Accent    string `yaml:"accent" validate:"omitempty,hexcolor"`
}

type teamRecord struct {
	ID              string       `yaml:"id" validate:"required"`
	Name            string       `yaml:"name" validate:"required"`
	Abbr            string       `yaml:"abbr" validate:"required,len=3"`
	City            string       `yaml:"city"`
	Colors          colorsRecord `yaml:"colors"`
	StartingWins    int          `yaml:"starting_wins" validate:"gte=0,lte=82"`
	StartingPayroll int64        `yaml:"starting_payroll" validate:"gte=0"`
	Difficulty      string       `yaml:"difficulty"`
	Description     string       `yaml:"description"`
	Situation       string       `yaml:"situation"`
	Roster          []string     `yaml:"roster" validate:"required,min=1,dive,required"`
}

type playersFile struct {
	Players []playerRecord `yaml:"players" validate:"required,min=1,dive"`
}

type statsRecord struct {
	PPG float64 `yaml:"ppg" validate:"gte=0"`
	RPG float64 `yaml:"rpg" validate:"gte=0"`
	APG float64 `yaml:"apg" validate:"gte=0"`
}

type playerRecord struct {
	ID          string      `yaml:"id" validate:"required"`
	Name        string      `yaml:"name" validate:"required"`
	FirstName   string      `yaml:"first_name"`
	LastName    string      `yaml:"last_name"`
	Position    string      `yaml:"position"`
	NBATeam     string      `yaml:"nba_team"`
	Number      int         `yaml:"number" validate:"gte=0,lte=99"`
	Age         int         `yaml:"age" validate:"gte=0"`
	Salary      int64       `yaml:"salary" validate:"gte=0"`
	Stats       statsRecord `yaml:"stats"`
	Tier        string      `yaml:"tier" validate:"required,oneof=star role rookie"`
	WinImpact   int         `yaml:"win_impact"`
	Description string      `yaml:"description"`
}

type scenariosFile struct {
	Teams map[string]teamScenarios `yaml:"teams" validate:"required,min=1,dive"`
}

type teamScenarios struct {
	Intro  string           `yaml:"intro"`
	Rounds []scenarioRecord `yaml:"rounds" validate:"required,min=1,dive"`
}

type scenarioRecord struct {
	ID          string         `yaml:"id" validate:"required"`
	Round       int            `yaml:"round" validate:"gte=0"`
	Terminal    bool           `yaml:"terminal"`
	Title       string         `yaml:"title"`
	Description string         `yaml:"description"`
	Choices     []choiceRecord `yaml:"choices" validate:"dive"`
}

type choiceRecord struct {
	ID           string `yaml:"id" validate:"required"`
	Type         string `yaml:"type" validate:"required,oneof=star depth rookie strategy"`
	Title        string `yaml:"title" validate:"required"`
	Description  string `yaml:"description"`
	Player       string `yaml:"player"`
	WinChange    int    `yaml:"win_change"`
	SalaryChange int64  `yaml:"salary_change" validate:"gte=0"`
	Risk         string `yaml:"risk" validate:"required,oneof=low medium high"`
	Consequence  string `yaml:"consequence"`
	Next         string `yaml:"next" validate:"required"`
}

type endingsFile struct {
	Endings map[string]endingRecord `yaml:"endings" validate:"required,min=1,dive"`
}

type endingRecord struct {
	Icon        string            `yaml:"icon"`
	Title       string            `yaml:"title" validate:"required"`
	Subtitle    string            `yaml:"subtitle"`
	Type        string            `yaml:"type" validate:"required,oneof=victory failure neutral"`
	Description string            `yaml:"description" validate:"required"`
	Analysis    map[string]string `yaml:"analysis"`
}
