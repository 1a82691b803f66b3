package catalog

// defaultCourses is the B.Eng. Electrical/Electronic Engineering course list, years 1 to 4.
var defaultCourses = []Course{
	// First year, first semester
	{Code: "GSS 101", Title: "Use of English I", CreditUnit: 1, Year: 1, Semester: 1, Category: CategoryGSS},
	{Code: "GSS 105", Title: "Humanities", CreditUnit: 2, Year: 1, Semester: 1, Category: CategoryGSS},
	{Code: "GSS 107", Title: "Nigerian Peoples and Culture", CreditUnit: 2, Year: 1, Semester: 1, Category: CategoryGSS},
	{Code: "GSS 109", Title: "Basic Igbo Studies I", CreditUnit: 1, Year: 1, Semester: 1, Category: CategoryGSS},
	{Code: "MAT 101", Title: "Elementary Mathematics I", CreditUnit: 3, Year: 1, Semester: 1, Category: CategoryCore},
	{Code: "PHY 101", Title: "General Physics I", CreditUnit: 3, Year: 1, Semester: 1, Category: CategoryCore},
	{Code: "PHY 107", Title: "General Physics Laboratory I", CreditUnit: 1, Year: 1, Semester: 1, Category: CategoryCore},
	{Code: "ICH 101", Title: "Basic Organic Chemistry", CreditUnit: 2, Year: 1, Semester: 1, Category: CategoryCore},
	{Code: "ICH 111", Title: "General Basic Inorganic Chemistry", CreditUnit: 2, Year: 1, Semester: 1, Category: CategoryCore},
	{Code: "BUS 101", Title: "Introduction to Business", CreditUnit: 2, Year: 1, Semester: 1, Category: CategoryFaculty},
	{Code: "FEG 101", Title: "Engineering Mathematics I", CreditUnit: 3, Year: 1, Semester: 1, Category: CategoryCore},

	// First year, second semester
	{Code: "GSS 102", Title: "Use of English II", CreditUnit: 1, Year: 1, Semester: 2, Category: CategoryGSS},
	{Code: "GSS 106", Title: "Social Science", CreditUnit: 2, Year: 1, Semester: 2, Category: CategoryGSS},
	{Code: "GSS 110", Title: "Basic Igbo Studies II", CreditUnit: 1, Year: 1, Semester: 2, Category: CategoryGSS},
	{Code: "MAT 102", Title: "Elementary Mathematics II", CreditUnit: 3, Year: 1, Semester: 2, Category: CategoryCore},
	{Code: "PHY 102", Title: "General Physics II", CreditUnit: 3, Year: 1, Semester: 2, Category: CategoryCore},
	{Code: "PHY 108", Title: "General Physics Laboratory II", CreditUnit: 1, Year: 1, Semester: 2, Category: CategoryCore},
	{Code: "ICH 102", Title: "Basic General Physical Chemistry", CreditUnit: 2, Year: 1, Semester: 2, Category: CategoryCore},
	{Code: "ICH 112", Title: "Basic Practical Chemistry", CreditUnit: 2, Year: 1, Semester: 2, Category: CategoryCore},
	{Code: "FEG 102", Title: "Engineering Mathematics II", CreditUnit: 3, Year: 1, Semester: 2, Category: CategoryCore},
	{Code: "FEG 103", Title: "Circuit Theory I", CreditUnit: 2, Year: 1, Semester: 2, Category: CategoryCore},

	// Second year, first semester
	{Code: "MAT 201", Title: "Linear Algebra", CreditUnit: 3, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "CSE 201", Title: "Computer Programming I", CreditUnit: 2, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "ICH 221", Title: "General Physical Chemistry", CreditUnit: 2, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "FEG 281", Title: "Workshop Practice", CreditUnit: 2, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "FEG 201", Title: "Applied Electricity I", CreditUnit: 3, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "FEG 211", Title: "Applied Mechanics", CreditUnit: 2, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "FEG 213", Title: "Engineering Drawing I", CreditUnit: 2, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "FEG 221", Title: "Fluid Mechanics", CreditUnit: 2, Year: 2, Semester: 1, Category: CategoryCore},
	{Code: "FEG 250", Title: "Material Science", CreditUnit: 3, Year: 2, Semester: 1, Category: CategoryCore},

	// Second year, second semester
	{Code: "MAT 202", Title: "Elementary Differential Equations", CreditUnit: 3, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "CSE 202", Title: "Computer Programming II", CreditUnit: 2, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "BUS 204", Title: "Principles Management", CreditUnit: 2, Year: 2, Semester: 2, Category: CategoryElective},
	{Code: "FEG 202", Title: "Applied Electricity II", CreditUnit: 3, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "FEG 212", Title: "Applied Mechanics II (Dynamics)", CreditUnit: 2, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "FEG 214", Title: "Engineering Drawing II", CreditUnit: 3, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "FEG 215", Title: "Strength of Materials II", CreditUnit: 3, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "FEG 242", Title: "Thermodynamics", CreditUnit: 2, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "FEG 280", Title: "Engineers in Society", CreditUnit: 2, Year: 2, Semester: 2, Category: CategoryCore},
	{Code: "FEG 282", Title: "Workshop Practice II", CreditUnit: 2, Year: 2, Semester: 2, Category: CategoryCore},

	// Third year, first semester
	{Code: "FEG 303", Title: "Engineering Mathematics 3", CreditUnit: 3, Year: 3, Semester: 1, Category: CategoryFaculty},
	{Code: "ELE 343", Title: "Electro-Mechanical Devices and Machine", CreditUnit: 2, Year: 3, Semester: 1, Category: CategoryCore},
	{Code: "ELE 311", Title: "Circuit Theory 1", CreditUnit: 2, Year: 3, Semester: 1, Category: CategoryCore},
	{Code: "ECE 323", Title: "Electronic Devices and Circuits", CreditUnit: 2, Year: 3, Semester: 1, Category: CategoryCore},
	{Code: "ELE 353", Title: "Power Systems", CreditUnit: 3, Year: 3, Semester: 1, Category: CategoryCore},
	{Code: "ELE 341", Title: "Electromagnetic Fields and Waves", CreditUnit: 3, Year: 3, Semester: 1, Category: CategoryCore},
	{Code: "ECE 331", Title: "Signals and Systems", CreditUnit: 2, Year: 3, Semester: 1, Category: CategoryCore},
	{Code: "ECE 321", Title: "Telecommunications 1", CreditUnit: 2, Year: 3, Semester: 1, Category: CategoryCore},
	{Code: "ECE 333", Title: "Digital System Design 1", CreditUnit: 2, Year: 3, Semester: 1, Category: CategoryCore},

	// Third year, second semester
	{Code: "FEG 372", Title: "Instrumentation and Measurement", CreditUnit: 2, Year: 3, Semester: 2, Category: CategoryFaculty},
	{Code: "ELE 344", Title: "Electro-Mechanical Devices and Machine 2", CreditUnit: 2, Year: 3, Semester: 2, Category: CategoryCore},
	{Code: "ELE 312", Title: "Circuit Theory 2", CreditUnit: 3, Year: 3, Semester: 2, Category: CategoryCore},
	{Code: "ECE 326", Title: "Physical Electronics", CreditUnit: 2, Year: 3, Semester: 2, Category: CategoryCore},
	{Code: "ECE 328", Title: "Electronic Devices and Circuits 2", CreditUnit: 3, Year: 3, Semester: 2, Category: CategoryCore},
	{Code: "ELE 382", Title: "Feedback and Control Systems", CreditUnit: 2, Year: 3, Semester: 2, Category: CategoryCore},
	{Code: "ELE 342", Title: "Electrodynamics", CreditUnit: 2, Year: 3, Semester: 2, Category: CategoryCore},
	{Code: "ECE 322", Title: "Telecommunications 2", CreditUnit: 2, Year: 3, Semester: 2, Category: CategoryCore},
	{Code: "ECE 334", Title: "Digital System Design 2", CreditUnit: 2, Year: 3, Semester: 2, Category: CategoryCore},

	// Fourth year, first semester
	{Code: "ECE 405", Title: "Microprocessors & Microcomputers", CreditUnit: 3, Year: 4, Semester: 1, Category: CategoryCore},
	{Code: "ECE 421", Title: "Assembly Language Programming", CreditUnit: 2, Year: 4, Semester: 1, Category: CategoryCore},
	{Code: "ECE 427", Title: "Advanced Circuit Techniques", CreditUnit: 3, Year: 4, Semester: 1, Category: CategoryCore},
	{Code: "ECE 431", Title: "Fundamentals of Digital Communication", CreditUnit: 3, Year: 4, Semester: 1, Category: CategoryCore},
	{Code: "ELE 403", Title: "Circuit Theory II", CreditUnit: 3, Year: 4, Semester: 1, Category: CategoryCore},
	{Code: "ELE 473", Title: "Instrumentation and Measurement", CreditUnit: 3, Year: 4, Semester: 1, Category: CategoryCore},
	{Code: "CVE 421", Title: "Engineering Contracts and Specifications", CreditUnit: 2, Year: 4, Semester: 1, Category: CategoryElective},
	{Code: "FEG 404", Title: "Engineering Mathematics IV", CreditUnit: 3, Year: 4, Semester: 1, Category: CategoryFaculty},
}
