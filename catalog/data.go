package catalog

import "lawmitra-backend/models"

func strPtr(s string) *string { return &s }

// practicalLaws is the built-in catalog of practical law information.
// Serves as the default dataset when no database is configured.
var practicalLaws = []models.Law{
	// Traffic & Road Safety Laws
	{
		ID:       "traffic-1",
		Title:    "Traffic Signal Violations",
		Category: "traffic",
		Summary:  "Jumping a red light is punishable with a fine of ₹1,000-5,000, depending on the vehicle type.",
		Content:  "According to the Motor Vehicles Act, disregarding traffic signals can result in a fine of ₹1,000 for first-time offenders and up to ₹5,000 for repeat offenders. For commercial vehicles, the fines are higher. Additionally, your driving license can be suspended for up to 3 months in serious cases.",
		Penalty:  strPtr("₹1,000-5,000 fine, possible license suspension"),
	},
	{
		ID:       "traffic-2",
		Title:    "Driving Without License",
		Category: "traffic",
		Summary:  "Driving without a valid license can lead to imprisonment up to 3 months or a fine of ₹5,000 or both.",
		Content:  "As per the Motor Vehicles Act, driving without a valid license is a serious offense. First-time offenders may face a fine of ₹5,000, while repeat offenders may face imprisonment up to 3 months along with the fine. If a minor is caught driving, the registered owner of the vehicle will be held responsible and face more severe penalties.",
		Penalty:  strPtr("₹5,000 fine, possible imprisonment"),
	},

	// Women's Safety & Rights
	{
		ID:       "women-1",
		Title:    "Sexual Harassment at Workplace",
		Category: "women",
		Summary:  "The Sexual Harassment of Women at Workplace Act provides protection against workplace harassment.",
		Content:  "The Sexual Harassment of Women at Workplace (Prevention, Prohibition and Redressal) Act, 2013 mandates that every organization with 10 or more employees must have an Internal Complaints Committee (ICC). Harassment includes unwelcome physical contact, demand for sexual favors, showing pornography, or any other unwelcome physical, verbal or non-verbal conduct of sexual nature. Complaints can be filed within 3 months of the incident.",
		Helpline: strPtr("Women's Helpline: 1091"),
	},
	{
		ID:       "women-2",
		Title:    "Domestic Violence Protection",
		Category: "women",
		Summary:  "The Protection of Women from Domestic Violence Act provides civil remedies like protection orders.",
		Content:  "The Protection of Women from Domestic Violence Act, 2005 covers physical, sexual, verbal, emotional, and economic abuse. It provides for protection orders, residence orders, monetary relief, and custody orders. A complaint can be filed with the Protection Officer, Service Provider, or directly with a Magistrate. Women can get emergency assistance by calling the women's helpline.",
		Helpline: strPtr("Women's Helpline: 1091, Domestic Violence Helpline: 181"),
	},

	// Children's Rights & Protection
	{
		ID:       "children-1",
		Title:    "Protection Against Child Labor",
		Category: "children",
		Summary:  "Employment of children below 14 years is prohibited in any occupation.",
		Content:  "The Child Labour (Prohibition and Regulation) Act prohibits employment of children below 14 years in any occupation. Children between 14-18 years are protected under the law against employment in hazardous occupations. Violation can lead to imprisonment from 6 months up to 2 years and a fine of ₹20,000 to ₹50,000.",
		Helpline: strPtr("Childline: 1098"),
	},
	{
		ID:       "children-2",
		Title:    "Right to Education",
		Category: "children",
		Summary:  "Every child between 6-14 years has the right to free and compulsory education.",
		Content:  "Under the Right of Children to Free and Compulsory Education Act (RTE), 2009, every child between the age of 6 to 14 years has the right to free and compulsory education. Schools must reserve 25% seats for economically weaker sections. No child can be held back, expelled, or required to pass a board examination until the completion of elementary education.",
		Helpline: strPtr("National Education Helpline: 1800 11 8004"),
	},

	// Accident & Compensation
	{
		ID:       "accident-1",
		Title:    "Road Accident Compensation",
		Category: "accident",
		Summary:  "Victims of road accidents are entitled to compensation under the Motor Vehicles Act.",
		Content:  "Under the Motor Vehicles Act, victims of road accidents or their legal heirs can claim compensation through Motor Accident Claims Tribunals. Compensation is calculated based on factors like age, income, and future prospects of the victim. Claims must be filed within 6 months of the accident, though courts may accept delays with valid reasons.",
		Helpline: strPtr("Road Accident Emergency: 108"),
	},
	{
		ID:       "accident-2",
		Title:    "Workplace Accident Compensation",
		Category: "accident",
		Summary:  "Employees injured at work are entitled to compensation under the Employees' Compensation Act.",
		Content:  "The Employees' Compensation Act provides for compensation to employees who suffer injury or occupational diseases arising out of and in the course of employment. The employer is liable to pay compensation if personal injury is caused to an employee by accident arising out of and in the course of employment. The amount depends on the extent of injury and the employee's monthly wages.",
		Helpline: strPtr("Labour Helpline: 1800 11 2014"),
	},

	// Important Helplines
	{
		ID:       "helpline-1",
		Title:    "Emergency Helplines",
		Category: "helpline",
		Summary:  "Essential emergency numbers every citizen should know.",
		Content:  "These are the essential emergency numbers every Indian citizen should know and have readily available.",
		ContactList: []models.Contact{
			{Name: "Police Emergency", Number: "100"},
			{Name: "Ambulance", Number: "108"},
			{Name: "Women's Helpline", Number: "1091"},
			{Name: "Child Helpline", Number: "1098"},
			{Name: "Senior Citizen Helpline", Number: "14567"},
			{Name: "National Emergency Number", Number: "112"},
			{Name: "Fire Emergency", Number: "101"},
			{Name: "Domestic Violence Helpline", Number: "181"},
		},
	},
}
