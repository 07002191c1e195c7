package trivia

// Question is a trivia question with one correct and three wrong answers
type Question struct {
	Prompt  string
	Correct string
	Wrong   [3]string
}

// Questions is the built-in question bank
var Questions = []Question{
	{"What is the capital of France?", "Paris", [3]string{"London", "Berlin", "Madrid"}},
	{"How many continents are there?", "7", [3]string{"5", "6", "8"}},
	{"What is the largest planet in our solar system?", "Jupiter", [3]string{"Saturn", "Neptune", "Earth"}},
	{"Who painted the Mona Lisa?", "Leonardo da Vinci", [3]string{"Pablo Picasso", "Vincent van Gogh", "Michelangelo"}},
	{"What is the chemical symbol for gold?", "Au", [3]string{"Ag", "Fe", "Cu"}},
	{"In what year did World War II end?", "1945", [3]string{"1944", "1946", "1943"}},
	{"What is the hardest natural substance on Earth?", "Diamond", [3]string{"Iron", "Titanium", "Quartz"}},
	{"How many bones are in the adult human body?", "206", [3]string{"186", "226", "196"}},
	{"What is the speed of light (approx)?", "300,000 km/s", [3]string{"150,000 km/s", "500,000 km/s", "1,000,000 km/s"}},
	{"Which element has the atomic number 1?", "Hydrogen", [3]string{"Helium", "Oxygen", "Carbon"}},
	{"What is the largest ocean on Earth?", "Pacific Ocean", [3]string{"Atlantic Ocean", "Indian Ocean", "Arctic Ocean"}},
	{"Who wrote Romeo and Juliet?", "William Shakespeare", [3]string{"Charles Dickens", "Jane Austen", "Mark Twain"}},
	{"What is the square root of 144?", "12", [3]string{"11", "13", "14"}},
	{"Which planet is known as the Red Planet?", "Mars", [3]string{"Venus", "Mercury", "Jupiter"}},
	{"What is the main language spoken in Brazil?", "Portuguese", [3]string{"Spanish", "English", "French"}},
	{"How many sides does a hexagon have?", "6", [3]string{"5", "7", "8"}},
	{"What year was the first iPhone released?", "2007", [3]string{"2005", "2008", "2010"}},
	{"What is the largest mammal in the world?", "Blue Whale", [3]string{"Elephant", "Giraffe", "Hippopotamus"}},
	{"Which country has the most people?", "India", [3]string{"China", "USA", "Indonesia"}},
	{"What does DNA stand for?", "Deoxyribonucleic Acid", [3]string{"Dioxyribo Nucleic Acid", "Dynamic Nuclear Acid", "Digital Nucleic Array"}},
}
