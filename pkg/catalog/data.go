package catalog

// Static curriculum tables. Image and first-chapter video references come
// from the original course material set.
var subjects = []Subject{
	{
		Name:     "Mathematics",
		ImageRef: "https://img.freepik.com/free-vector/mathematical-equations-background_23-2148162823.jpg",
		Chapters: []Chapter{
			{
				Title:       "Algebra",
				Description: "Variables, expressions and equations: how letters stand in for unknown quantities and how to solve for them step by step.",
				VideoRef:    "https://youtu.be/pTnEG_WGd2Q",
			},
			{
				Title:       "Geometry",
				Description: "Points, lines, angles and shapes; measuring perimeter, area and volume, and reasoning about congruence and similarity.",
				VideoRef:    "https://youtu.be/302eJ3TzJQU",
			},
			{
				Title:       "Calculus",
				Description: "Limits, derivatives and integrals as the mathematics of change, with an emphasis on intuition before formalism.",
				VideoRef:    "https://youtu.be/WUvTyaaNkzM",
			},
		},
	},
	{
		Name:     "Physics",
		ImageRef: "https://img.freepik.com/free-vector/hand-drawn-physics-background_23-2148163125.jpg",
		Chapters: []Chapter{
			{
				Title:       "Mechanics",
				Description: "Motion, forces and Newton's laws: describing how objects move and predicting what happens when forces act on them.",
				VideoRef:    "https://youtu.be/ZM8ECpBuQYE",
			},
			{
				Title:       "Electricity and Magnetism",
				Description: "Charge, current, circuits and fields, and how electricity and magnetism are two faces of the same interaction.",
				VideoRef:    "https://youtu.be/x1-SibwIPM4",
			},
			{
				Title:       "Waves and Optics",
				Description: "Oscillations, sound and light: wavelength, frequency, interference, and how lenses and mirrors form images.",
				VideoRef:    "https://youtu.be/TfYCnOvNnFU",
			},
		},
	},
	{
		Name:     "Chemistry",
		ImageRef: "https://img.freepik.com/free-vector/hand-drawn-chemistry-background_23-2148163136.jpg",
		Chapters: []Chapter{
			{
				Title:       "The Periodic Table",
				Description: "How the elements are organized, what periods and groups reveal about atomic structure, and trends across the table.",
				VideoRef:    "https://youtu.be/rz4Dd1I_fX0",
			},
			{
				Title:       "Chemical Bonding",
				Description: "Ionic, covalent and metallic bonds: why atoms combine and how bond type explains the properties of compounds.",
				VideoRef:    "https://youtu.be/QqjcCvzWwww",
			},
			{
				Title:       "Stoichiometry",
				Description: "Balancing equations and mole calculations: the bookkeeping that lets chemists predict quantities in reactions.",
				VideoRef:    "https://youtu.be/UL1jmJaUkaQ",
			},
		},
	},
	{
		Name:     "Biology",
		ImageRef: "https://img.freepik.com/free-vector/hand-drawn-biology-background_23-2148162166.jpg",
		Chapters: []Chapter{
			{
				Title:       "Introduction to Biology",
				Description: "What makes something alive: cells, metabolism, reproduction and the shared chemistry of all living things.",
				VideoRef:    "https://youtu.be/QnQe0xW_JY4",
			},
			{
				Title:       "Cell Structure",
				Description: "Organelles and their jobs: membranes, the nucleus, mitochondria, and how plant and animal cells differ.",
				VideoRef:    "https://youtu.be/URUJD5NEXC8",
			},
			{
				Title:       "Genetics",
				Description: "DNA, genes and inheritance: how traits pass between generations and how mutations introduce variation.",
				VideoRef:    "https://youtu.be/CBezq1fFUEA",
			},
		},
	},
	{
		Name:     "History",
		ImageRef: "https://img.freepik.com/free-vector/vintage-old-books-background_23-2148162160.jpg",
		Chapters: []Chapter{
			{
				Title:       "Ancient Civilizations",
				Description: "Mesopotamia, Egypt and the river valley societies: agriculture, writing and the first cities.",
				VideoRef:    "https://youtu.be/Yocja_N5s1I",
			},
			{
				Title:       "The Middle Ages",
				Description: "Feudal Europe, the Islamic golden age and the Silk Road: a connected medieval world beyond the castles.",
				VideoRef:    "https://youtu.be/H5ZL6DaqCSM",
			},
			{
				Title:       "The Industrial Revolution",
				Description: "Steam, factories and railways: how mechanized production transformed work, cities and daily life.",
				VideoRef:    "https://youtu.be/zhL5DCizj5c",
			},
		},
	},
	{
		Name:     "Literature",
		ImageRef: "https://img.freepik.com/free-photo/books-arrangement-with-copy-space_23-2148890922.jpg",
		Chapters: []Chapter{
			{
				Title:       "Analyzing Literature",
				Description: "Theme, character and narrative voice: a toolkit for reading closely and arguing about what a text means.",
				VideoRef:    "https://youtu.be/4ZXQQtUyJCQ",
			},
			{
				Title:       "Poetry",
				Description: "Meter, imagery and form: how poems compress meaning and why line breaks matter.",
				VideoRef:    "https://youtu.be/JwhouCNq-Fc",
			},
			{
				Title:       "Shakespeare",
				Description: "Reading the plays as scripts: language, staging and the questions that keep them performed four centuries on.",
				VideoRef:    "https://youtu.be/G_IXCOLRxcA",
			},
		},
	},
	{
		Name:     "Computer Science",
		ImageRef: "https://img.freepik.com/free-vector/programming-code-background_23-2148160526.jpg",
		Chapters: []Chapter{
			{
				Title:       "Introduction to Programming",
				Description: "Programs as precise instructions: variables, loops and functions, and how to think about a problem before coding it.",
				VideoRef:    "https://youtu.be/zOjov-2OZ0E",
			},
			{
				Title:       "Data Structures",
				Description: "Arrays, lists, stacks and trees: choosing the right container and what that choice costs.",
				VideoRef:    "https://youtu.be/RBSGKlAvoiM",
			},
			{
				Title:       "Algorithms",
				Description: "Searching, sorting and complexity: comparing approaches by how they scale, not just whether they work.",
				VideoRef:    "https://youtu.be/0IAPZzGSbME",
			},
		},
	},
}
