package directory

var centralMinisters = MinisterSet{
	Ministers: []Minister{
		{
			Name:       "Narendra Modi",
			Department: "Prime Minister's Office",
			Portfolio:  "Prime Minister",
			Term:       "2019-Present",
		},
		{
			Name:       "Amit Shah",
			Department: "Home Affairs",
			Portfolio:  "Minister of Home Affairs",
			Term:       "2019-Present",
		},
	},
	Departments: []string{
		"Prime Minister's Office",
		"Home Affairs",
		"Finance",
		"Defense",
		"External Affairs",
	},
}

var stateMinisters = map[string]MinisterSet{
	"MH": {
		Ministers: []Minister{
			{
				Name:       "Eknath Shinde",
				Department: "Chief Minister's Office",
				Portfolio:  "Chief Minister",
				Term:       "2022-Present",
			},
		},
		Departments: []string{"Chief Minister's Office", "Home", "Finance", "Urban Development"},
	},
	"KA": {
		Ministers: []Minister{
			{
				Name:       "Siddaramaiah",
				Department: "Chief Minister's Office",
				Portfolio:  "Chief Minister",
				Term:       "2023-Present",
			},
		},
		Departments: []string{"Chief Minister's Office", "Home", "Finance", "Education"},
	},
}

var stateConstitutions = map[string]StateConstitution{
	"AP": {
		Code:                    "AP",
		Name:                    "Andhra Pradesh",
		History:                 "Andhra Pradesh was created in 1956 through the States Reorganisation Act. The state was further reorganized in 2014 to create Telangana.",
		GovernmentStructure:     "The state government of Andhra Pradesh operates within the framework of parliamentary democracy with a Governor as the constitutional head and the Chief Minister as the head of government.",
		ConstitutionalFramework: "Andhra Pradesh follows the constitutional framework of India and has provisions for local self-governance through Panchayati Raj institutions.",
		Articles: []StateArticle{
			{Title: "Article 1: Formation of State", Content: "Describes the formation of Andhra Pradesh as a state within the Union of India."},
			{Title: "Article 2: Administrative Divisions", Content: "Outlines the administrative divisions of the state into districts, mandals, and villages."},
		},
		Laws: []StateLaw{
			{Title: "Andhra Pradesh Land Reforms Act", Description: "Legislation aimed at land ceiling and redistribution."},
			{Title: "Andhra Pradesh Panchayat Raj Act", Description: "Governs the structure and functioning of local self-government in rural areas."},
		},
	},
	"KA": {
		Code:                    "KA",
		Name:                    "Karnataka",
		History:                 "Karnataka was formed on November 1, 1956, with the passage of the States Reorganisation Act. Originally known as the State of Mysore, it was renamed Karnataka in 1973.",
		GovernmentStructure:     "Karnataka has a parliamentary system of government with a bicameral legislature consisting of the Karnataka Legislative Assembly and the Karnataka Legislative Council.",
		ConstitutionalFramework: "Karnataka follows the constitutional framework set by the Constitution of India and has provisions for local self-governance through urban local bodies and Panchayat Raj institutions.",
		Articles: []StateArticle{
			{Title: "Article 1: Establishment of State", Content: "Defines the establishment of Karnataka as a state within the Indian Union."},
			{Title: "Article 2: Official Language", Content: "Establishes Kannada as the official language of the state."},
		},
		Laws: []StateLaw{
			{Title: "Karnataka Land Reforms Act", Description: "Aimed at reforming land ownership and tenancy in the state."},
			{Title: "Karnataka Municipalities Act", Description: "Governs the structure and functioning of municipalities in the state."},
		},
	},
	"MH": {
		Code:                    "MH",
		Name:                    "Maharashtra",
		History:                 "Maharashtra was formed on May 1, 1960, under the Bombay Reorganisation Act. It was created on linguistic principles, with Marathi-speaking regions forming the state.",
		GovernmentStructure:     "The state has a parliamentary system with a bicameral legislature consisting of the Maharashtra Legislative Assembly and the Maharashtra Legislative Council.",
		ConstitutionalFramework: "Maharashtra follows the Indian constitutional framework with provisions for local governance through municipal corporations, municipalities, and Panchayati Raj institutions.",
		Articles: []StateArticle{
			{Title: "Article 1: State Boundaries", Content: "Defines the geographical boundaries of Maharashtra."},
			{Title: "Article 2: State Capital", Content: "Establishes Mumbai as the capital of the state."},
		},
		Laws: []StateLaw{
			{Title: "Maharashtra Land Revenue Code", Description: "Consolidates the law relating to land and land revenue in the state."},
			{Title: "Maharashtra Municipal Corporations Act", Description: "Governs the municipal corporations of the state's larger cities."},
		},
	},
}
