package main

type seedItem struct {
	Name        string
	Description string
	Price       float64
}

type seedRestaurant struct {
	Name  string
	Items []seedItem
}

var seedRestaurants = []seedRestaurant{
	{
		Name: "Chipotle",
		Items: []seedItem{
			{"Chicken Burrito Bowl", "Grilled chicken with rice, beans, and fresh toppings", 9.5},
			{"Steak Burrito", "Grilled steak wrapped in a warm tortilla with your choice of toppings", 10.75},
			{"Carnitas Tacos", "Slow-cooked pork in soft corn tortillas", 8.95},
			{"Veggie Bowl", "Sofritas tofu with fajita vegetables, rice, and beans", 8.75},
			{"Chips and Guacamole", "Fresh-made tortilla chips with house-made guacamole", 4.5},
			{"Barbacoa Bowl", "Shredded beef with rice, black beans, cheese, and fresh salsa", 10.25},
			{"Chicken Quesadilla", "Grilled chicken, cheese, and peppers in a warm tortilla", 8.95},
			{"Sofritas Burrito", "Spicy tofu, rice, beans, and fresh vegetables wrapped in tortilla", 9.25},
		},
	},
	{
		Name: "Panera Bread",
		Items: []seedItem{
			{"Mac and Cheese", "Creamy Vermont white cheddar mac and cheese", 7.99},
			{"Broccoli Cheddar Soup", "Rich and creamy soup with fresh broccoli", 6.49},
			{"Mediterranean Veggie Sandwich", "Hummus, feta, cucumbers, tomatoes on tomato basil bread", 9.29},
			{"Caesar Salad", "Romaine lettuce with parmesan and homemade croutons", 8.79},
			{"Chocolate Chip Cookie", "Freshly baked chocolate chip cookie", 2.99},
			{"Avocado BLT Sandwich", "Bacon, lettuce, tomato, and avocado on sourdough", 10.49},
			{"Turkey Artichoke Panini", "Roasted turkey with artichoke hearts and sun-dried tomatoes", 9.99},
			{"French Onion Soup", "Caramelized onions in beef broth with melted gruyere", 6.99},
		},
	},
	{
		Name: "Sweetgreen",
		Items: []seedItem{
			{"Harvest Bowl", "Warm wild rice with roasted chicken and sweet potato", 13.5},
			{"Kale Caesar", "Kale and romaine with parmesan crisps", 11.95},
			{"Shroomami", "Roasted portobello mushrooms with wild rice", 12.5},
			{"Fish Taco Bowl", "Blackened fish with warm quinoa and lime", 14.25},
			{"Guacamole Greens", "Fresh greens with guacamole and tortilla chips", 11.75},
			{"Chicken Pesto Parm", "Roasted chicken with pesto, quinoa, and parmesan", 13.95},
			{"Spicy Thai Salad", "Mixed greens with spicy cashew dressing and sesame seeds", 12.95},
			{"Warm Grain Bowl", "Quinoa, farro, and roasted vegetables with tahini", 12.5},
		},
	},
	{
		Name: "Shake Shack",
		Items: []seedItem{
			{"ShackBurger", "Cheeseburger with lettuce, tomato, ShackSauce", 6.89},
			{"SmokeShack", "Burger with bacon, cherry peppers, ShackSauce", 8.69},
			{"Shroom Burger", "Crispy fried portobello mushroom with cheese", 7.79},
			{"Crinkle Cut Fries", "Classic crinkle cut fries", 3.99},
			{"Chocolate Shake", "Hand-spun chocolate milkshake", 5.99},
			{"Chick'n Shack", "Crispy chicken sandwich with lettuce, pickles, and buttermilk herb mayo", 7.89},
			{"Concrete", "Frozen custard blended with your choice of mix-ins", 5.49},
			{"Cheese Fries", "Crispy crinkle-cut fries topped with cheese sauce", 4.99},
		},
	},
	{
		Name: "Olive Garden",
		Items: []seedItem{
			{"Fettuccine Alfredo", "Creamy parmesan sauce over fettuccine pasta", 15.99},
			{"Chicken Parmigiana", "Breaded chicken breast with marinara and mozzarella", 17.49},
			{"Tour of Italy", "Lasagna, fettuccine alfredo, and chicken parmigiana", 20.99},
			{"Minestrone Soup", "Fresh vegetables, beans, and pasta in a tomato broth", 6.99},
			{"Tiramisu", "Classic Italian dessert with espresso-soaked ladyfingers", 7.99},
			{"Chicken Scampi", "Tender chicken with shrimp in white wine lemon butter sauce", 18.99},
			{"Zuppa Toscana", "Spicy sausage soup with kale and potatoes", 7.49},
			{"Stuffed Mushrooms", "Mushrooms stuffed with Italian cheeses and herbs", 8.99},
		},
	},
	{
		Name: "Starbucks",
		Items: []seedItem{
			{"Caffe Latte", "Rich espresso with steamed milk", 4.95},
			{"Caramel Macchiato", "Espresso with vanilla-flavored syrup, milk, and caramel drizzle", 5.45},
			{"Pumpkin Spice Latte", "Espresso with pumpkin, cinnamon, and nutmeg flavors", 5.95},
			{"Turkey & Provolone Sandwich", "Sliced turkey with provolone on ciabatta", 7.95},
			{"Chocolate Croissant", "Buttery croissant with chocolate filling", 3.25},
			{"Iced White Chocolate Mocha", "Espresso with white chocolate and whipped cream over ice", 5.95},
			{"Protein Box", "Boiled eggs, cheese, grapes, and multigrain muesli bread", 7.45},
			{"Banana Bread", "Moist banana bread with walnuts", 2.95},
		},
	},
	{
		Name: "McDonalds",
		Items: []seedItem{
			{"Big Mac", "Two beef patties, special sauce, lettuce, cheese, pickles, onions", 5.99},
			{"Quarter Pounder with Cheese", "Quarter pound beef patty with cheese, onions, pickles, ketchup, mustard", 5.49},
			{"McChicken", "Crispy chicken patty with mayo and lettuce", 4.99},
			{"Chicken McNuggets", "Bite-sized pieces of chicken, 10 pieces", 5.49},
			{"French Fries", "World famous golden fries", 3.49},
			{"McDouble", "Two beef patties with cheese, pickles, onions, ketchup, mustard", 3.99},
			{"Apple Pie", "Warm apple pie with flaky crust", 1.99},
			{"McFlurry", "Vanilla soft serve with your choice of mix-ins", 4.49},
		},
	},
	{
		Name: "Taco Bell",
		Items: []seedItem{
			{"Crunchwrap Supreme", "Beef, nacho cheese, sour cream, lettuce, tomatoes, wrapped in tortilla", 5.29},
			{"Chalupa Supreme", "Beef, lettuce, tomatoes, sour cream, cheese in fried shell", 4.79},
			{"Bean Burrito", "Refried beans, red sauce, cheese, onions", 2.49},
			{"Nachos BellGrande", "Beef, beans, nacho cheese, sour cream, tomatoes, jalapeños", 5.99},
			{"Mexican Pizza", "Beef, refried beans, tomatoes, layered with tortillas", 5.99},
			{"Crunchy Taco", "Seasoned beef, lettuce, and cheese in crispy shell", 1.99},
			{"Cheesy Gordita Crunch", "Beef, nacho cheese, lettuce, and tomatoes in soft and crunchy shell", 4.79},
			{"Cinnamon Twists", "Sweet cinnamon twists for dessert", 1.99},
		},
	},
	{
		Name: "Panda Express",
		Items: []seedItem{
			{"Orange Chicken", "Crispy chicken breast with tangy orange sauce", 7.99},
			{"Kung Pao Chicken", "Diced chicken with peanuts and vegetables in spicy sauce", 7.99},
			{"Beef and Broccoli", "Tender beef with fresh broccoli in savory sauce", 8.99},
			{"SweetFire Chicken Breast", "Grilled chicken with bell peppers and onions in sweet chili sauce", 7.99},
			{"Beijing Beef", "Crispy beef with bell peppers in tangy sweet sauce", 8.99},
			{"Honey Walnut Shrimp", "Crispy shrimp in honey sauce with candied walnuts", 9.99},
			{"Chow Mein", "Stir-fried noodles with vegetables and your choice of protein", 7.99},
			{"Eggplant Tofu", "Crispy eggplant and tofu in savory garlic sauce", 7.99},
		},
	},
	{
		Name: "Five Guys",
		Items: []seedItem{
			{"Cheeseburger", "Two patties with American cheese and toppings", 8.99},
			{"Bacon Cheeseburger", "Two patties with bacon, cheese, and toppings", 10.49},
			{"Little Hamburger", "Single patty with fresh toppings", 6.99},
			{"Cajun Fries", "Fries seasoned with Cajun spices", 4.99},
			{"Veggie Sandwich", "Grilled vegetables with cheese and toppings", 7.99},
			{"Bacon Burger", "Single patty with bacon and cheese", 8.99},
			{"Hot Dog", "All-beef hot dog with your choice of toppings", 5.99},
			{"Regular Fries", "Fresh-cut fries cooked in peanut oil", 4.99},
		},
	},
}
