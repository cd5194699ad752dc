package services

import "strings"

// slideText holds the captions, labels and fallback paragraphs printed on the
// deck. A locale missing from an entry falls back to English, then to the key.
var slideText = map[string]map[Language]string{
	// Cover
	"coverProposalTo": {LangEN: "Work proposal to", LangFR: "Proposition de travail pour"},
	"coverAction":     {LangEN: "develop solutions", LangFR: "développer des solutions"},
	"coverFor":        {LangEN: "for", LangFR: "pour"},
	"coverValidity":   {LangEN: "Validity:", LangFR: "Validité :"},
	"coverReference":  {LangEN: "Reference:", LangFR: "Référence :"},

	// Titles
	"sectionContextNeed": {LangEN: "Context / Need", LangFR: "Contexte / Besoin"},
	"titleContext":       {LangEN: "Context", LangFR: "Contexte"},
	"titleTechSpecs":     {LangEN: "Technical specifications", LangFR: "Cahier des charges"},
	"titlePrediction":    {LangEN: "How we predict molecular properties", LangFR: "Comment nous prédisons les propriétés moléculaires"},
	"titleChallenges":    {LangEN: "Challenges in transposing QSPR method", LangFR: "Défis de la transposition de la méthode QSPR"},
	"titleEncouraging":   {LangEN: "Encouraging initial research", LangFR: "Résultats de recherche encourageants"},
	"titlePosition":      {LangEN: "Alysophil's position", LangFR: "Position d'Alysophil"},
	"titleStudyContent":  {LangEN: "Study content", LangFR: "Contenu de l'étude"},
	"titleResources":     {LangEN: "Resources & deliverables", LangFR: "Ressources & livrables"},
	"titlePlanning":      {LangEN: "Planning", LangFR: "Planning"},
	"titleBudget":        {LangEN: "Budget", LangFR: "Budget"},

	// Technical specifications
	"techSpecsIntro": {
		LangEN: "provided Alysophil with specifications for the ideal product.",
		LangFR: "a fourni à Alysophil un cahier des charges pour le produit idéal.",
	},
	"techSpecsNote": {
		LangEN: "Alysophil will adapt its methodologies to best meet these specifications.",
		LangFR: "Alysophil adaptera ses méthodologies pour répondre au mieux à ce cahier des charges.",
	},

	// Prediction
	"predictionSubtitle": {
		LangEN: "QSp/aR - Quantitative Structure property/activity Relationship",
		LangFR: "QSp/aR - Quantitative Structure property/activity Relationship",
	},
	"predictionExplanation": {
		LangEN: "QSPR/QSAR methods establish mathematical relationships between the molecular structure of chemical compounds and their physical, chemical, or biological properties. By encoding structural features as numerical descriptors, machine learning models can predict target properties from structure alone.",
		LangFR: "Les méthodes QSPR/QSAR établissent des relations mathématiques entre la structure moléculaire des composés chimiques et leurs propriétés physiques, chimiques ou biologiques. En encodant les caractéristiques structurelles sous forme de descripteurs numériques, les modèles d'apprentissage automatique peuvent prédire les propriétés cibles à partir de la seule structure.",
	},
	"generationExplanation": {
		LangEN: "Reverse QSPR starts from the target properties and searches the chemical space for structures that satisfy them. Generative models propose candidates that are then scored by the predictive models and ranked.",
		LangFR: "Le QSPR inverse part des propriétés cibles et explore l'espace chimique à la recherche de structures qui les satisfont. Des modèles génératifs proposent des candidats qui sont ensuite évalués par les modèles prédictifs puis classés.",
	},
	"trainingModelsTitle": {LangEN: "Training models to predict from structure", LangFR: "Entraînement de modèles prédictifs"},
	"reverseQsprTitle":    {LangEN: "Reverse QSPR", LangFR: "QSPR inverse"},
	"inputLabel":          {LangEN: "Input", LangFR: "Entrée"},
	"outputLabel":         {LangEN: "Output", LangFR: "Sortie"},
	"structureLabel":      {LangEN: "Molecular structure", LangFR: "Structure moléculaire"},
	"propertiesLabel":     {LangEN: "Target properties", LangFR: "Propriétés cibles"},

	// Challenges
	"challengesDefault": {
		LangEN: "1. The multi-scale complexity of polymer systems makes modeling more challenging than for small molecules.\n\n2. Available experimental data is often limited and heterogeneous, complicating model training.",
		LangFR: "1. La complexité multi-échelle des systèmes polymères rend la modélisation plus difficile que pour les petites molécules.\n\n2. Les données expérimentales disponibles sont souvent limitées et hétérogènes, ce qui complique l'entraînement des modèles.",
	},
	"challengeCaption": {LangEN: "Multi-scale complexity in polymer systems", LangFR: "Complexité multi-échelle dans les systèmes polymères"},

	// Encouraging research
	"encouragingIntro": {
		LangEN: "Alysophil conducted initial research on the {client} subject...",
		LangFR: "Alysophil a mené des recherches initiales sur le sujet {client}...",
	},
	"encouragingDefault": {
		LangEN: "1. Initial QSPR models trained on public data show promising results.\n\n2. Reverse generation methods have identified interesting candidate structures.",
		LangFR: "1. Les premiers modèles QSPR entraînés sur des données publiques montrent des résultats prometteurs.\n\n2. Les méthodes de génération inverse ont permis d'identifier des structures candidates intéressantes.",
	},
	"encouragingConclusion": {
		LangEN: "These encouraging results justify building a structured research program.",
		LangFR: "Ces résultats encourageants justifient la construction d'un programme de recherche structuré.",
	},

	// Position
	"positionDefault": {
		LangEN: "Alysophil proposes to apply its QSPR expertise to meet the specifications.",
		LangFR: "Alysophil propose d'appliquer son expertise en QSPR pour répondre au cahier des charges.",
	},
	"legendWillPredict": {LangEN: "Will be predicted", LangFR: "Sera prédit"},
	"legendIfProgress":  {LangEN: "If progress allows", LangFR: "Si les avancées le permettent"},
	"legendNotFeasible": {LangEN: "Not feasible at this stage", LangFR: "Non faisable à ce stade"},

	// Study content
	"objectiveLabel": {LangEN: "Objective:", LangFR: "Objectif :"},
	"durationLabel":  {LangEN: "Duration:", LangFR: "Durée :"},
	"weeksLabel":     {LangEN: "weeks", LangFR: "semaines"},

	// Resources
	"definitionRoles":   {LangEN: "Definition of roles", LangFR: "Définition des rôles"},
	"roleColumn":        {LangEN: "Role", LangFR: "Rôle"},
	"contactColumn":     {LangEN: "Contact", LangFR: "Contact"},
	"deliverablesTitle": {LangEN: "Deliverables", LangFR: "Livrables"},

	// Planning
	"planningIntro": {
		LangEN: "A total of {weeks} weeks is planned for this project.",
		LangFR: "Un total de {weeks} semaines est prévu pour ce projet.",
	},
	"weekAbbr":      {LangEN: "W", LangFR: "S"},
	"vacationLabel": {LangEN: "Vacation", LangFR: "Congés"},

	// Budget
	"budgetWeeks":     {LangEN: "{n} weeks", LangFR: "{n} semaines"},
	"budgetFTE":       {LangEN: "{n} FTE", LangFR: "{n} ETP"},
	"budgetDailyRate": {LangEN: "Daily rate: {rate} EUR/day/FTE", LangFR: "Taux journalier : {rate} EUR/jour/ETP"},
	"budgetTotal":     {LangEN: "Total:", LangFR: "Total :"},
	"budgetSubject":   {LangEN: "Subject", LangFR: "Objet"},
	"budgetUnitPrice": {LangEN: "Unit Price", LangFR: "Prix unitaire"},
	"budgetQty":       {LangEN: "Qty", LangFR: "Qté"},
	"budgetTotalCol":  {LangEN: "Total", LangFR: "Total"},
	"budgetStudy":     {LangEN: "QSPR Study", LangFR: "Étude QSPR"},
	"budgetPerDay":    {LangEN: "/day", LangFR: "/jour"},
	"budgetDays":      {LangEN: "{n} days", LangFR: "{n} jours"},
	"budgetTotalHT":   {LangEN: "Total excl. VAT", LangFR: "Total HT"},
	"budgetVAT":       {LangEN: "VAT {rate}", LangFR: "TVA {rate}"},
	"budgetTotalTTC":  {LangEN: "Total incl. VAT", LangFR: "Total TTC"},
	"budgetPaymentTerms": {
		LangEN: "Payment terms: 50% at signature, 50% at delivery of results.",
		LangFR: "Conditions de paiement : 50% à la signature, 50% à la livraison des résultats.",
	},

	// Workbook and brief
	"sheetWeeks":       {LangEN: "Total weeks", LangFR: "Semaines totales"},
	"sheetFTE":         {LangEN: "FTE", LangFR: "ETP"},
	"sheetDailyRate":   {LangEN: "Daily rate (EUR/day/FTE)", LangFR: "Taux journalier (EUR/jour/ETP)"},
	"sheetDays":        {LangEN: "Days", LangFR: "Jours"},
	"sheetWorkPackage": {LangEN: "Work package", LangFR: "Lot de travail"},
	"sheetStart":       {LangEN: "Start week", LangFR: "Semaine de début"},
	"sheetEnd":         {LangEN: "End week", LangFR: "Semaine de fin"},
	"briefTitle":       {LangEN: "Proposal summary", LangFR: "Synthèse de la proposition"},
	"briefClient":      {LangEN: "Client", LangFR: "Client"},
	"briefDate":        {LangEN: "Date", LangFR: "Date"},
	"briefTeam":        {LangEN: "Team", LangFR: "Équipe"},
	"briefName":        {LangEN: "Name", LangFR: "Nom"},

	// Footer
	"confidentialFooter": {
		LangEN: "Confidential - Property of Alysophil - Reproduction prohibited",
		LangFR: "Confidentiel - Propriété Alysophil - Reproduction interdite",
	},
}

// st returns the slide text for key in lang.
func st(key string, lang Language) string {
	entry, ok := slideText[key]
	if !ok {
		return key
	}
	if s, ok := entry[lang]; ok {
		return s
	}
	if s, ok := entry[LangEN]; ok {
		return s
	}
	return key
}

// stf is st with {placeholder} substitution; args are name/value pairs.
func stf(key string, lang Language, args ...string) string {
	s := st(key, lang)
	for i := 0; i+1 < len(args); i += 2 {
		s = strings.ReplaceAll(s, "{"+args[i]+"}", args[i+1])
	}
	return s
}

// orDefault returns text unless it is blank, in which case the localized
// fallback paragraph is used.
func orDefault(text, key string, lang Language) string {
	if strings.TrimSpace(text) == "" {
		return st(key, lang)
	}
	return text
}
