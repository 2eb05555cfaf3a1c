package fallback

func defaultSubjects() []SubjectSet {
	return []SubjectSet{
		{Name: "Mathematics", Topics: []TopicSet{
			{Name: "Algebra", Items: []Item{
				{
					Question:    "What is the value of x in the equation 2x + 5 = 13?",
					Options:     []string{"x = 3", "x = 4", "x = 5", "x = 6"},
					Correct:     "x = 4",
					Explanation: "Subtract 5 from both sides to get 2x = 8, then divide by 2 to get x = 4.",
				},
				{
					Question:    "Which of the following is a quadratic equation?",
					Options:     []string{"2x + 3 = 0", "x² + 2x + 1 = 0", "x³ + x = 0", "1/x = 2"},
					Correct:     "x² + 2x + 1 = 0",
					Explanation: "A quadratic equation has 2 as the highest power of the variable.",
				},
				{
					Question:    "Simplify 3(x + 4) - 2x.",
					Options:     []string{"x + 12", "5x + 12", "x + 4", "x - 12"},
					Correct:     "x + 12",
					Explanation: "Expand to 3x + 12, then subtract 2x to get x + 12.",
				},
				{
					Question:    "If y = 2x - 1, what is y when x = 5?",
					Options:     []string{"9", "10", "11", "8"},
					Correct:     "9",
					Explanation: "Substitute x = 5: y = 2(5) - 1 = 9.",
				},
			}},
			{Name: "Geometry", Items: []Item{
				{
					Question:    "What is the area of a circle with radius 5 units?",
					Options:     []string{"10π", "25π", "5π", "50π"},
					Correct:     "25π",
					Explanation: "The area of a circle is πr², so π × 5² = 25π.",
				},
				{
					Question:    "What is the sum of the interior angles of a triangle?",
					Options:     []string{"90°", "180°", "270°", "360°"},
					Correct:     "180°",
					Explanation: "The three interior angles of any triangle add up to 180°.",
				},
				{
					Question:    "A right-angled triangle has legs of 3 cm and 4 cm. How long is the hypotenuse?",
					Options:     []string{"5 cm", "6 cm", "7 cm", "12 cm"},
					Correct:     "5 cm",
					Explanation: "By Pythagoras, √(3² + 4²) = √25 = 5.",
				},
			}},
			{Name: "Statistics", Items: []Item{
				{
					Question:    "What is the mean of 2, 4, 6 and 8?",
					Options:     []string{"4", "5", "6", "20"},
					Correct:     "5",
					Explanation: "The sum is 20 and there are 4 values, so the mean is 20 / 4 = 5.",
				},
				{
					Question:    "Which measure is the middle value of an ordered data set?",
					Options:     []string{"Mean", "Median", "Mode", "Range"},
					Correct:     "Median",
					Explanation: "The median is the middle value once the data is sorted.",
				},
				{
					Question:    "What is the mode of 3, 7, 7, 2, 9?",
					Options:     []string{"7", "3", "9", "2"},
					Correct:     "7",
					Explanation: "The mode is the value that appears most often.",
				},
			}},
		}},
		{Name: "Physics", Topics: []TopicSet{
			{Name: "Mechanics", Items: []Item{
				{
					Question:    "What is the SI unit of force?",
					Options:     []string{"Newton (N)", "Joule (J)", "Watt (W)", "Pascal (Pa)"},
					Correct:     "Newton (N)",
					Explanation: "Force is measured in newtons, named after Sir Isaac Newton.",
				},
				{
					Question:    "A car travels 100 m in 20 s. What is its average speed?",
					Options:     []string{"2 m/s", "5 m/s", "20 m/s", "120 m/s"},
					Correct:     "5 m/s",
					Explanation: "Speed is distance divided by time: 100 / 20 = 5 m/s.",
				},
				{
					Question:    "Which law states that every action has an equal and opposite reaction?",
					Options:     []string{"Newton's first law", "Newton's second law", "Newton's third law", "Hooke's law"},
					Correct:     "Newton's third law",
					Explanation: "Newton's third law describes action and reaction pairs.",
				},
			}},
			{Name: "Electricity", Items: []Item{
				{
					Question:    "What is the SI unit of electrical resistance?",
					Options:     []string{"Volt", "Ampere", "Ohm", "Coulomb"},
					Correct:     "Ohm",
					Explanation: "Resistance is measured in ohms (Ω).",
				},
				{
					Question:    "A 12 V battery drives 3 A through a resistor. What is the resistance?",
					Options:     []string{"4 Ω", "36 Ω", "9 Ω", "15 Ω"},
					Correct:     "4 Ω",
					Explanation: "By Ohm's law, R = V / I = 12 / 3 = 4 Ω.",
				},
			}},
		}},
		{Name: "Biology", Topics: []TopicSet{
			{Name: "Cell Biology", Items: []Item{
				{
					Question:    "What is the powerhouse of the cell?",
					Options:     []string{"Mitochondria", "Nucleus", "Golgi apparatus", "Endoplasmic reticulum"},
					Correct:     "Mitochondria",
					Explanation: "Mitochondria produce most of the cell's energy through respiration.",
				},
				{
					Question:    "Which structure controls what enters and leaves a cell?",
					Options:     []string{"Cell membrane", "Cell wall", "Ribosome", "Vacuole"},
					Correct:     "Cell membrane",
					Explanation: "The cell membrane is selectively permeable.",
				},
				{
					Question:    "Which organelle is found in plant cells but not in animal cells?",
					Options:     []string{"Chloroplast", "Mitochondrion", "Nucleus", "Ribosome"},
					Correct:     "Chloroplast",
					Explanation: "Chloroplasts carry out photosynthesis in plant cells.",
				},
			}},
			{Name: "Genetics", Items: []Item{
				{
					Question:    "What molecule carries genetic information in most living organisms?",
					Options:     []string{"DNA", "ATP", "Glucose", "Protein"},
					Correct:     "DNA",
					Explanation: "DNA stores the genetic instructions of an organism.",
				},
				{
					Question:    "How many chromosomes are found in a normal human body cell?",
					Options:     []string{"23", "46", "44", "48"},
					Correct:     "46",
					Explanation: "Human body cells have 23 pairs, which is 46 chromosomes.",
				},
			}},
		}},
		{Name: "Chemistry", Topics: []TopicSet{
			{Name: "Inorganic Chemistry", Items: []Item{
				{
					Question:    "What is the chemical symbol for gold?",
					Options:     []string{"Ag", "Au", "Fe", "Cu"},
					Correct:     "Au",
					Explanation: "Au comes from the Latin word for gold, aurum.",
				},
				{
					Question:    "What is the pH of pure water at 25°C?",
					Options:     []string{"0", "7", "10", "14"},
					Correct:     "7",
					Explanation: "Pure water is neutral with a pH of 7.",
				},
			}},
			{Name: "Organic Chemistry", Items: []Item{
				{
					Question:    "Which element is present in every organic compound?",
					Options:     []string{"Carbon", "Oxygen", "Nitrogen", "Sulphur"},
					Correct:     "Carbon",
					Explanation: "Organic chemistry is the chemistry of carbon compounds.",
				},
				{
					Question:    "What is the general formula of the alkanes?",
					Options:     []string{"CnH2n+2", "CnH2n", "CnH2n-2", "CnHn"},
					Correct:     "CnH2n+2",
					Explanation: "Alkanes are saturated hydrocarbons with formula CnH2n+2.",
				},
			}},
		}},
		{Name: "History", Topics: []TopicSet{
			{Name: "African History", Items: []Item{
				{
					Question:    "In which year did Kenya gain independence?",
					Options:     []string{"1957", "1960", "1963", "1970"},
					Correct:     "1963",
					Explanation: "Kenya became independent from Britain on 12 December 1963.",
				},
				{
					Question:    "Which was the first sub-Saharan African country to gain independence from colonial rule?",
					Options:     []string{"Ghana", "Nigeria", "Kenya", "Tanzania"},
					Correct:     "Ghana",
					Explanation: "Ghana became independent in 1957 under Kwame Nkrumah.",
				},
			}},
			{Name: "World History", Items: []Item{
				{
					Question:    "In which year did World War II end?",
					Options:     []string{"1918", "1939", "1945", "1950"},
					Correct:     "1945",
					Explanation: "World War II ended in 1945.",
				},
			}},
		}},
		{Name: "Geography", Topics: []TopicSet{
			{Name: "Physical Geography", Items: []Item{
				{
					Question:    "What is the largest desert in Africa?",
					Options:     []string{"Sahara", "Kalahari", "Namib", "Libyan"},
					Correct:     "Sahara",
					Explanation: "The Sahara is the largest hot desert in the world.",
				},
				{
					Question:    "Which is the longest river in Africa?",
					Options:     []string{"Nile", "Congo", "Niger", "Zambezi"},
					Correct:     "Nile",
					Explanation: "The Nile flows over 6,600 km to the Mediterranean Sea.",
				},
			}},
			{Name: "Climate", Items: []Item{
				{
					Question:    "Which gas is the main contributor to the greenhouse effect from human activity?",
					Options:     []string{"Carbon dioxide", "Oxygen", "Nitrogen", "Argon"},
					Correct:     "Carbon dioxide",
					Explanation: "Burning fossil fuels releases carbon dioxide, which traps heat.",
				},
			}},
		}},
		{Name: "English", Topics: []TopicSet{
			{Name: "Grammar", Items: []Item{
				{
					Question:    "Which of these is a proper noun?",
					Options:     []string{"city", "London", "river", "mountain"},
					Correct:     "London",
					Explanation: "Proper nouns name specific people, places or things and start with a capital letter.",
				},
				{
					Question:    "Which word is a verb in the sentence 'The children sang loudly'?",
					Options:     []string{"children", "sang", "loudly", "The"},
					Correct:     "sang",
					Explanation: "A verb expresses an action; 'sang' is the action here.",
				},
			}},
		}},
	}
}

func genericTemplates() []Item {
	return []Item{
		{
			Question:    "What is the main focus of {topic} in {subject}?",
			Options:     []string{"Basic concepts", "Advanced theories", "Practical applications", "Historical development"},
			Correct:     "Basic concepts",
			Explanation: "{topic} covers fundamental concepts in {subject}.",
		},
		{
			Question:    "Which study habit helps most when learning {topic}?",
			Options:     []string{"Practising regularly and reviewing mistakes", "Reading notes once before an exam", "Memorising answers without understanding", "Skipping the difficult parts"},
			Correct:     "Practising regularly and reviewing mistakes",
			Explanation: "Regular practice with feedback builds lasting understanding.",
		},
		{
			Question:    "When you meet an unfamiliar {topic} problem, what should you do first?",
			Options:     []string{"Identify what is given and what is asked", "Guess the answer quickly", "Move on to another subject", "Copy a similar answer"},
			Correct:     "Identify what is given and what is asked",
			Explanation: "Understanding the problem is the first step of any solution.",
		},
		{
			Question:    "Why is {topic} an important part of {subject}?",
			Options:     []string{"It builds a foundation for later topics", "It is never examined", "It only matters to experts", "It has no real-world use"},
			Correct:     "It builds a foundation for later topics",
			Explanation: "Core topics in {subject} support the ideas that come after them.",
		},
		{
			Question:    "What is the best way to check your understanding of {topic}?",
			Options:     []string{"Explain it in your own words", "Highlight the whole textbook", "Read the chapter title", "Avoid practice questions"},
			Correct:     "Explain it in your own words",
			Explanation: "Explaining an idea shows whether you truly understand it.",
		},
		{
			Question:    "Which resource is most useful when revising {topic}?",
			Options:     []string{"Worked examples with explanations", "Unrelated novels", "Only the answer key", "Social media posts"},
			Correct:     "Worked examples with explanations",
			Explanation: "Worked examples show the reasoning behind each step.",
		},
		{
			Question:    "How should mistakes in {topic} practice be treated?",
			Options:     []string{"As chances to learn what to review", "As proof you cannot learn it", "As something to hide", "As unimportant"},
			Correct:     "As chances to learn what to review",
			Explanation: "Mistakes point to the ideas that need more attention.",
		},
		{
			Question:    "Which approach connects {topic} to everyday life?",
			Options:     []string{"Finding real-world examples", "Memorising definitions only", "Ignoring applications", "Studying only past papers"},
			Correct:     "Finding real-world examples",
			Explanation: "Real-world examples make abstract ideas in {subject} concrete.",
		},
		{
			Question:    "What should you do after finishing a {topic} exercise?",
			Options:     []string{"Check your answers and reasoning", "Throw away your work", "Start a new topic immediately", "Assume everything is correct"},
			Correct:     "Check your answers and reasoning",
			Explanation: "Reviewing work catches errors and reinforces method.",
		},
		{
			Question:    "Which skill is most developed by studying {subject}?",
			Options:     []string{"Structured thinking", "Speed reading", "Handwriting", "Drawing"},
			Correct:     "Structured thinking",
			Explanation: "{subject} trains you to reason step by step.",
		},
		{
			Question:    "How can you remember key terms in {topic}?",
			Options:     []string{"Use them when explaining ideas", "Read them once", "Avoid writing them down", "Only learn them the night before"},
			Correct:     "Use them when explaining ideas",
			Explanation: "Using vocabulary actively helps it stick.",
		},
		{
			Question:    "What is a good first goal when starting {topic}?",
			Options:     []string{"Understand the core definitions", "Master every advanced case", "Finish in one day", "Skip the basics"},
			Correct:     "Understand the core definitions",
			Explanation: "Definitions are the building blocks of {topic}.",
		},
		{
			Question:    "Which is a sign that you understand {topic} well?",
			Options:     []string{"You can solve new problems on it", "You recognise the chapter heading", "You have read about it once", "You know the page number"},
			Correct:     "You can solve new problems on it",
			Explanation: "Transferring knowledge to new problems shows real understanding.",
		},
		{
			Question:    "How often should you revisit {topic} to remember it long-term?",
			Options:     []string{"At spaced intervals over weeks", "Never after the first lesson", "Only once a year", "Only during exams"},
			Correct:     "At spaced intervals over weeks",
			Explanation: "Spaced review strengthens long-term memory.",
		},
		{
			Question:    "What should you do if a {topic} idea is confusing?",
			Options:     []string{"Ask a question and break it into smaller parts", "Give up on the subject", "Pretend to understand", "Memorise it word for word"},
			Correct:     "Ask a question and break it into smaller parts",
			Explanation: "Breaking problems down makes difficult ideas manageable.",
		},
		{
			Question:    "Which activity turns {topic} knowledge into skill?",
			Options:     []string{"Solving practice problems", "Watching others only", "Reading summaries only", "Listening to music"},
			Correct:     "Solving practice problems",
			Explanation: "Active practice builds skill.",
		},
		{
			Question:    "When comparing two ideas in {topic}, what should you look for?",
			Options:     []string{"Similarities and differences", "Which one is longer", "Which one appears first", "Which one has more examples"},
			Correct:     "Similarities and differences",
			Explanation: "Comparison focuses on how ideas are alike and how they differ.",
		},
		{
			Question:    "What helps most when preparing for a {subject} test?",
			Options:     []string{"Timed practice under test conditions", "Studying all night before", "Reading only your favourite topics", "Skipping revision"},
			Correct:     "Timed practice under test conditions",
			Explanation: "Timed practice builds accuracy and pacing.",
		},
		{
			Question:    "Which statement about learning {topic} is true?",
			Options:     []string{"Understanding grows with effort and practice", "Only naturally gifted students can learn it", "It cannot be learned after school", "It does not connect to other topics"},
			Correct:     "Understanding grows with effort and practice",
			Explanation: "Ability in {subject} develops through sustained effort.",
		},
		{
			Question:    "How can you tell which parts of {topic} need more work?",
			Options:     []string{"Review which questions you got wrong", "Count the pages you read", "Check how long you studied", "Ask which topic is shortest"},
			Correct:     "Review which questions you got wrong",
			Explanation: "Incorrect answers reveal the gaps in understanding.",
		},
	}
}
