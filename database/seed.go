package database

import (
	"github.com/rs/zerolog/log"
	"gorm.io/datatypes"

	"github.com/salvodev/portfolio-backend/models"
)

func strptr(s string) *string { return &s }

// Seed populates the initial portfolio content. Each block is skipped when its
// table already has rows, so running it repeatedly is safe.
func (d Database) Seed() error {
	if current, err := d.professionalInfoRepo.Current(); err != nil {
		return err
	} else if current == nil {
		teamSize := 16
		info := &models.ProfessionalInfo{
			FullName:        "Salvatore",
			Title:           "Senior Full Stack Developer",
			Bio:             "Sono uno sviluppatore Full Stack proveniente dalla Sicilia ma ormai trasferito a Roma da circa 9 anni. Ho iniziato la mia carriera come sviluppatore Java, ma negli ultimi anni mi sono focalizzato su tecnologie SAP per lavoro mentre mi diletto in progetti personali con tecnologie come React, NodeJS e TypeScript.",
			Location:        "Roma, Italia",
			YearsExperience: 9,
			CurrentPosition: "SAP BTP Practice Leader (SME)",
			CurrentCompany:  "GotoNext SRL",
			TeamSize:        &teamSize,
			CVURL:           nil,
		}
		if err := d.professionalInfoRepo.Put(info); err != nil {
			return err
		}
	}

	projects, err := d.projectRepo.FindAll()
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		seedProjects := []models.Project{
			{
				Title:        "Telegram Bot Config Reality",
				Description:  "Un bot per la configurazione di oggetti 3D",
				Technologies: datatypes.JSONSlice[string]{"Node.js", "Telegram API"},
				DemoURL:      strptr("https://example.com/demo"),
				GithubURL:    strptr("https://github.com/example/telegram-bot"),
				DisplayOrder: 1,
			},
			{
				Title:        "Cubo Pazzesco",
				Description:  "Un cubo pazzesco in 3D",
				Technologies: datatypes.JSONSlice[string]{"JavaScript", "ThreeJS"},
				DemoURL:      strptr("https://example.com/cubo-demo"),
				GithubURL:    strptr("https://github.com/example/cubo-pazzesco"),
				DisplayOrder: 2,
			},
			{
				Title:        "viewer-3d-lit-loader",
				Description:  "Un loader per il viewer 3d",
				Technologies: datatypes.JSONSlice[string]{"Lit Element", "TypeScript", "Three.js"},
				GithubURL:    strptr("https://github.com/example/viewer-3d-lit-loader"),
				NpmURL:       strptr("https://npmjs.com/package/viewer-3d-lit-loader"),
				DisplayOrder: 3,
			},
			{
				Title:        "Config Reality",
				Description:  "Un configuratore 3D costruito con il magico mondo di Three js",
				Technologies: datatypes.JSONSlice[string]{"React.js", "Three.js"},
				DemoURL:      strptr("https://example.com/config-reality"),
				GithubURL:    strptr("https://github.com/example/config-reality"),
				DisplayOrder: 4,
			},
			{
				Title:        "Minesweeper",
				Description:  "Il mio giochino preferito, senza pubblicità",
				Technologies: datatypes.JSONSlice[string]{"Vite", "React"},
				DemoURL:      strptr("https://example.com/minesweeper"),
				GithubURL:    strptr("https://github.com/example/minesweeper"),
				DisplayOrder: 5,
			},
		}
		for i := range seedProjects {
			if err := d.projectRepo.Add(&seedProjects[i]); err != nil {
				return err
			}
		}
	}

	categories, err := d.skillCategoryRepo.FindAll()
	if err != nil {
		return err
	}
	if len(categories) == 0 {
		seedCategories := []models.SkillCategory{
			{Name: "Linguaggi di Programmazione", DisplayOrder: 1},
			{Name: "Frameworks", DisplayOrder: 2},
			{Name: "Tecnologie SAP", DisplayOrder: 3},
			{Name: "Tecnologie non SAP", DisplayOrder: 4},
			{Name: "Infrastructures", DisplayOrder: 5},
			{Name: "Other", DisplayOrder: 6},
		}
		for i := range seedCategories {
			if err := d.skillCategoryRepo.Add(&seedCategories[i]); err != nil {
				return err
			}
		}

		languagesID := seedCategories[0].ID
		frameworksID := seedCategories[1].ID
		seedSkills := []models.Skill{
			{Name: "HTML5", CategoryID: languagesID, ProficiencyLevel: 5, DisplayOrder: 1},
			{Name: "CSS 3", CategoryID: languagesID, ProficiencyLevel: 5, DisplayOrder: 2},
			{Name: "JavaScript", CategoryID: languagesID, ProficiencyLevel: 5, DisplayOrder: 3},
			{Name: "TypeScript", CategoryID: languagesID, ProficiencyLevel: 5, DisplayOrder: 4},
			{Name: "SQL", CategoryID: languagesID, ProficiencyLevel: 4, DisplayOrder: 5},
			{Name: "ABAP", CategoryID: languagesID, ProficiencyLevel: 4, DisplayOrder: 6},
			{Name: "Python", CategoryID: languagesID, ProficiencyLevel: 3, DisplayOrder: 7},
			{Name: "Node.js", CategoryID: frameworksID, ProficiencyLevel: 5, DisplayOrder: 1},
			{Name: "React", CategoryID: frameworksID, ProficiencyLevel: 5, DisplayOrder: 2},
			{Name: "Next.js", CategoryID: frameworksID, ProficiencyLevel: 4, DisplayOrder: 3},
			{Name: "Three.js", CategoryID: frameworksID, ProficiencyLevel: 4, DisplayOrder: 4},
		}
		for i := range seedSkills {
			if err := d.skillRepo.Add(&seedSkills[i]); err != nil {
				return err
			}
		}
	}

	log.Info().Msg("Database seeded successfully")
	return nil
}
