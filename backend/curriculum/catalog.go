package curriculum

var dsaTopics = []DSATopic{
	{
		Title:       "Arrays Basics",
		Description: "Learn the fundamentals of arrays, including traversal, insertion, and deletion operations.",
		Problems: []Problem{
			{Name: "Two Sum", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "Best Time to Buy and Sell Stock", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "Contains Duplicate", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "Maximum Subarray", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Product of Array Except Self", Difficulty: "Medium", Platform: "LeetCode"},
		},
	},
	{
		Title:       "Sliding Window Technique",
		Description: "Master the sliding window approach for solving array and string problems efficiently.",
		Problems: []Problem{
			{Name: "Maximum Sum Subarray of Size K", Difficulty: "Easy", Platform: "GFG"},
			{Name: "Minimum Size Subarray Sum", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Longest Substring Without Repeating Characters", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Fruit Into Baskets", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Longest Repeating Character Replacement", Difficulty: "Medium", Platform: "LeetCode"},
		},
	},
	{
		Title:       "Two Pointers Approach",
		Description: "Learn to use two pointers to solve array problems with optimal time complexity.",
		Problems: []Problem{
			{Name: "Valid Palindrome", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "Remove Duplicates from Sorted Array", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "3Sum", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Container With Most Water", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Trapping Rain Water", Difficulty: "Hard", Platform: "LeetCode"},
		},
	},
	{
		Title:       "Binary Search",
		Description: "Master the binary search algorithm for efficiently finding elements in sorted arrays.",
		Problems: []Problem{
			{Name: "Binary Search", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "Search Insert Position", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "Find First and Last Position of Element in Sorted Array", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Search in Rotated Sorted Array", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Median of Two Sorted Arrays", Difficulty: "Hard", Platform: "LeetCode"},
		},
	},
	{
		Title:       "Hashing Techniques",
		Description: "Learn to use hash maps and sets to solve problems with optimal time complexity.",
		Problems: []Problem{
			{Name: "Valid Anagram", Difficulty: "Easy", Platform: "LeetCode"},
			{Name: "Group Anagrams", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Longest Consecutive Sequence", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "Subarray Sum Equals K", Difficulty: "Medium", Platform: "LeetCode"},
			{Name: "LRU Cache", Difficulty: "Medium", Platform: "LeetCode"},
		},
	},
}

var devTopics = []DevTopic{
	{
		Title:       "HTML Fundamentals",
		Description: "Learn the basics of HTML, the building block of web pages.",
		Tasks: []string{
			"Create a basic HTML page structure",
			"Work with headings, paragraphs, and text formatting",
			"Add links and images to a webpage",
			"Create lists and tables",
			"Build a simple personal portfolio page",
		},
	},
	{
		Title:       "CSS Basics",
		Description: "Style your HTML with CSS to create visually appealing web pages.",
		Tasks: []string{
			"Learn CSS selectors and specificity",
			"Apply colors, backgrounds, and borders",
			"Work with the box model (margin, padding, border)",
			"Create layouts with CSS positioning",
			"Style the portfolio page from the previous day",
		},
	},
	{
		Title:       "CSS Flexbox",
		Description: "Master the Flexbox layout model for creating responsive designs.",
		Tasks: []string{
			"Understand flex container and flex items",
			"Work with flex direction, wrap, and flow",
			"Use justify-content and align-items",
			"Create a responsive navigation bar with Flexbox",
			"Build a flexible card layout for a project showcase",
		},
	},
	{
		Title:       "CSS Grid",
		Description: "Learn CSS Grid for creating complex, two-dimensional layouts.",
		Tasks: []string{
			"Set up grid containers and define grid templates",
			"Work with grid areas and grid placement",
			"Create responsive layouts with grid",
			"Build a photo gallery with CSS Grid",
			"Combine Flexbox and Grid for complex layouts",
		},
	},
	{
		Title:       "JavaScript Basics",
		Description: "Get started with JavaScript, the programming language of the web.",
		Tasks: []string{
			"Understand variables, data types, and operators",
			"Work with conditional statements and loops",
			"Create and use functions",
			"Learn about arrays and objects",
			"Build a simple calculator with JavaScript",
		},
	},
}
