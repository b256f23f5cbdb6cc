package ingredient

// AllIngredients is the canonical reference catalog. IDs are stable; the UI
// and persisted selections refer to them.
var AllIngredients = []Item{
	{ID: "veg-onion", Name: "Onion", Category: CategoryVegetable},
	{ID: "veg-garlic", Name: "Garlic", Category: CategoryVegetable},
	{ID: "veg-tomato", Name: "Tomato", Category: CategoryVegetable},
	{ID: "veg-potato", Name: "Potato", Category: CategoryVegetable},
	{ID: "veg-carrot", Name: "Carrot", Category: CategoryVegetable},
	{ID: "veg-bell-pepper", Name: "Bell Pepper", Category: CategoryVegetable},
	{ID: "veg-chili-pepper", Name: "Chili Pepper", Category: CategoryVegetable},
	{ID: "veg-zucchini", Name: "Zucchini", Category: CategoryVegetable},
	{ID: "veg-eggplant", Name: "Eggplant", Category: CategoryVegetable},
	{ID: "veg-broccoli", Name: "Broccoli", Category: CategoryVegetable},
	{ID: "veg-cauliflower", Name: "Cauliflower", Category: CategoryVegetable},
	{ID: "veg-spinach", Name: "Spinach", Category: CategoryVegetable},
	{ID: "veg-kale", Name: "Kale", Category: CategoryVegetable},
	{ID: "veg-mushroom", Name: "Mushroom", Category: CategoryVegetable},
	{ID: "veg-green-onion", Name: "Green Onion (Scallion)", Category: CategoryVegetable},
	{ID: "veg-cucumber", Name: "Cucumber", Category: CategoryVegetable},
	{ID: "veg-celery", Name: "Celery", Category: CategoryVegetable},
	{ID: "veg-corn", Name: "Corn", Category: CategoryVegetable},
	{ID: "veg-peas", Name: "Peas", Category: CategoryVegetable},
	{ID: "veg-cabbage", Name: "Cabbage", Category: CategoryVegetable},
	{ID: "veg-sweet-potato", Name: "Sweet Potato", Category: CategoryVegetable},
	{ID: "veg-ginger", Name: "Ginger", Category: CategoryVegetable},

	{ID: "fru-apple", Name: "Apple", Category: CategoryFruit},
	{ID: "fru-banana", Name: "Banana", Category: CategoryFruit},
	{ID: "fru-strawberry", Name: "Strawberry", Category: CategoryFruit},
	{ID: "fru-blueberry", Name: "Blueberry", Category: CategoryFruit},
	{ID: "fru-lemon", Name: "Lemon", Category: CategoryFruit},
	{ID: "fru-lime", Name: "Lime", Category: CategoryFruit},
	{ID: "fru-orange", Name: "Orange", Category: CategoryFruit},
	{ID: "fru-mango", Name: "Mango", Category: CategoryFruit},
	{ID: "fru-peach", Name: "Peach", Category: CategoryFruit},
	{ID: "fru-cherry", Name: "Cherry", Category: CategoryFruit},
	{ID: "fru-grapes", Name: "Grapes", Category: CategoryFruit},
	{ID: "fru-avocado", Name: "Avocado", Category: CategoryFruit},
	{ID: "fru-pineapple", Name: "Pineapple", Category: CategoryFruit},

	{ID: "pro-chicken-breast", Name: "Chicken Breast", Category: CategoryProtein},
	{ID: "pro-chicken-thigh", Name: "Chicken Thigh", Category: CategoryProtein},
	{ID: "pro-ground-beef", Name: "Ground Beef", Category: CategoryProtein},
	{ID: "pro-beef-steak", Name: "Beef Steak", Category: CategoryProtein},
	{ID: "pro-pork-chop", Name: "Pork Chop", Category: CategoryProtein},
	{ID: "pro-bacon", Name: "Bacon", Category: CategoryProtein},
	{ID: "pro-salmon", Name: "Salmon", Category: CategoryProtein},
	{ID: "pro-tuna", Name: "Tuna", Category: CategoryProtein},
	{ID: "pro-shrimp", Name: "Shrimp", Category: CategoryProtein},
	{ID: "pro-egg", Name: "Egg", Category: CategoryProtein},
	{ID: "pro-tofu", Name: "Tofu", Category: CategoryProtein},

	{ID: "dai-milk", Name: "Milk", Category: CategoryDairy},
	{ID: "dai-butter", Name: "Butter", Category: CategoryDairy},
	{ID: "dai-cheddar", Name: "Cheddar Cheese", Category: CategoryDairy},
	{ID: "dai-parmesan", Name: "Parmesan Cheese", Category: CategoryDairy},
	{ID: "dai-mozzarella", Name: "Mozzarella Cheese", Category: CategoryDairy},
	{ID: "dai-yogurt", Name: "Yogurt", Category: CategoryDairy},
	{ID: "dai-cream", Name: "Heavy Cream", Category: CategoryDairy},
	{ID: "daa-coconut-milk", Name: "Coconut Milk", Category: CategoryDairyAlternative},
	{ID: "daa-almond-milk", Name: "Almond Milk", Category: CategoryDairyAlternative},

	{ID: "gra-rice", Name: "Rice", Category: CategoryGrain},
	{ID: "gra-pasta", Name: "Pasta", Category: CategoryGrain},
	{ID: "gra-bread", Name: "Bread", Category: CategoryGrain},
	{ID: "gra-flour", Name: "Flour", Category: CategoryGrain},
	{ID: "gra-oats", Name: "Oats", Category: CategoryGrain},
	{ID: "gra-quinoa", Name: "Quinoa", Category: CategoryGrain},

	{ID: "leg-black-beans", Name: "Black Beans", Category: CategoryLegume},
	{ID: "leg-chickpeas", Name: "Chickpeas", Category: CategoryLegume},
	{ID: "leg-lentils", Name: "Lentils", Category: CategoryLegume},

	{ID: "spi-salt", Name: "Salt", Category: CategorySpice},
	{ID: "spi-black-pepper", Name: "Black Pepper", Category: CategorySpice},
	{ID: "spi-paprika", Name: "Paprika", Category: CategorySpice},
	{ID: "spi-cumin", Name: "Cumin", Category: CategorySpice},
	{ID: "spi-turmeric", Name: "Turmeric", Category: CategorySpice},
	{ID: "spi-cinnamon", Name: "Cinnamon", Category: CategorySpice},
	{ID: "spi-curry-powder", Name: "Curry Powder", Category: CategorySpice},
	{ID: "spi-chili-flakes", Name: "Chili Flakes", Category: CategorySpice},

	{ID: "her-basil", Name: "Basil (Fresh)", Category: CategoryHerb},
	{ID: "her-cilantro", Name: "Cilantro (Fresh)", Category: CategoryHerb},
	{ID: "her-parsley", Name: "Parsley (Fresh)", Category: CategoryHerb},
	{ID: "her-rosemary", Name: "Rosemary", Category: CategoryHerb},
	{ID: "her-thyme", Name: "Thyme", Category: CategoryHerb},
	{ID: "her-mint", Name: "Mint (Fresh)", Category: CategoryHerb},

	{ID: "con-soy-sauce", Name: "Soy Sauce", Category: CategoryCondiment},
	{ID: "con-ketchup", Name: "Ketchup", Category: CategoryCondiment},
	{ID: "con-mustard", Name: "Mustard", Category: CategoryCondiment},
	{ID: "con-mayonnaise", Name: "Mayonnaise", Category: CategoryCondiment},
	{ID: "con-hot-sauce", Name: "Hot Sauce", Category: CategoryCondiment},
	{ID: "con-vinegar", Name: "Vinegar", Category: CategoryCondiment},

	{ID: "oil-olive-oil", Name: "Olive Oil", Category: CategoryOilFat},
	{ID: "oil-vegetable-oil", Name: "Vegetable Oil", Category: CategoryOilFat},
	{ID: "oil-sesame-oil", Name: "Sesame Oil", Category: CategoryOilFat},

	{ID: "swe-sugar", Name: "Sugar", Category: CategorySweetener},
	{ID: "swe-honey", Name: "Honey", Category: CategorySweetener},
	{ID: "swe-maple-syrup", Name: "Maple Syrup", Category: CategorySweetener},

	{ID: "nut-almond", Name: "Almond", Category: CategoryNut},
	{ID: "nut-peanut", Name: "Peanut", Category: CategoryNut},
	{ID: "nut-walnut", Name: "Walnut", Category: CategoryNut},
	{ID: "see-sesame", Name: "Sesame Seeds", Category: CategorySeed},
	{ID: "see-chia", Name: "Chia Seeds", Category: CategorySeed},

	{ID: "pan-chicken-stock", Name: "Chicken Stock", Category: CategoryPantryStaple},
	{ID: "pan-canned-tomato", Name: "Canned Tomatoes", Category: CategoryPantryStaple},
	{ID: "pan-tomato-paste", Name: "Tomato Paste", Category: CategoryPantryStaple},
	{ID: "pan-chocolate", Name: "Dark Chocolate", Category: CategoryPantryStaple},
	{ID: "bev-coffee", Name: "Coffee", Category: CategoryBeverage},
	{ID: "oth-tortilla", Name: "Tortilla", Category: CategoryOther},
}
