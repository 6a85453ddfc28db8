package gallery

import "github.com/cequella/portfolio/backend-go/internal/i18n"

// Sacilotto introduces Luiz Sacilotto's Concreções and embeds the
// composition generator.
var Sacilotto = Article{
	ID: "sacilotto",
	Title: i18n.Text{
		PT: "Luiz Sacilotto: A Estrutura do Concreto",
		EN: "Luiz Sacilotto: The Structure of Concrete",
	},
	Author:    "D.Çeqüella",
	Date:      "2026-02-02",
	Thumbnail: "/sacilotto-thumb.png",
	Sections: []Section{
		{
			Type:    SectionHeading,
			Content: i18n.Text{PT: "Um Mestre do Concretismo", EN: "A Master of Concretism"},
		},
		{
			Type: SectionText,
			Content: i18n.Text{
				PT: "Luiz Sacilotto (1924–2003) foi um pintor, escultor e desenhista brasileiro, figura central do movimento concreto no Brasil. Sua obra é marcada pela precisão geométrica e pela repetição de módulos, criando ritmos visuais que desafiam a percepção.",
				EN: "Luiz Sacilotto (1924–2003) was a Brazilian painter, sculptor and draughtsman, a central figure of the concrete art movement in Brazil. His work is marked by geometric precision and the repetition of modules, creating visual rhythms that challenge perception.",
			},
		},
		{
			Type:     SectionImage,
			ImageURL: "/sacilotto-concrecao.jpg",
			Caption: i18n.Text{
				PT: "Concreção 7553 (1975) - Uma exploração de ritmos e cores.",
				EN: "Concretion 7553 (1975) - An exploration of rhythms and colors.",
			},
		},
		{
			Type: SectionText,
			Content: i18n.Text{
				PT: "A série \"Concreção\" é talvez sua contribuição mais famosa, onde ele utiliza regras matemáticas simples para gerar composições complexas. Abaixo, você pode interagir com um gerador que segue os princípios de Sacilotto para criar composições inéditas baseadas em suas regras de simetria e progressão.",
				EN: "The \"Concretion\" series is perhaps his best known contribution, using simple mathematical rules to build complex compositions. Below you can play with a generator that follows Sacilotto's principles to create new compositions from his rules of symmetry and progression.",
			},
		},
		{
			Type:     SectionSketch,
			SketchID: "sacilotto-gen",
			Caption: i18n.Text{
				PT: "Gerador de Concreção: Clique no canvas para gerar uma nova composição.",
				EN: "Concretion Generator: Click on the canvas to generate a new composition.",
			},
		},
	},
}

// Articles lists every published article, newest first.
func Articles() []Article {
	return []Article{Sacilotto}
}
