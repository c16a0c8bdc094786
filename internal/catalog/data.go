package catalog

// builtinFoods is the embedded South Asian food dataset. Portion sizes are
// paired with the familiar object that best approximates them.
var builtinFoods = []FoodItem{
	{ID: "1", Name: "Chicken Tikka", Category: CategoryProtein, Calories: 220, PortionSize: "100g", VisualReference: "Deck of Cards", Description: "One portion is about the size of a deck of cards."},
	{ID: "2", Name: "Tandoori Chicken", Category: CategoryProtein, Calories: 260, PortionSize: "1 leg piece", VisualReference: "Computer Mouse", Description: "A leg piece is roughly the size of a computer mouse."},
	{ID: "3", Name: "Fish Curry", Category: CategoryProtein, Calories: 190, PortionSize: "1 fillet", VisualReference: "Checkbook", Description: "A fish fillet matches a checkbook in length and width."},
	{ID: "4", Name: "Seekh Kebab", Category: CategoryProtein, Calories: 180, PortionSize: "1 skewer", VisualReference: "Pencil", Description: "One kebab is about the length of a pencil."},
	{ID: "5", Name: "Boiled Egg", Category: CategoryProtein, Calories: 78, PortionSize: "1 egg", VisualReference: "Golf Ball", Description: "A medium egg is slightly larger than a golf ball."},
	{ID: "6", Name: "Dal Tadka", Category: CategoryProtein, Calories: 150, PortionSize: "1 cup", VisualReference: "Baseball", Description: "A cup of cooked dal fills about a baseball's volume."},
	{ID: "7", Name: "Steamed Rice", Category: CategoryCarbs, Calories: 200, PortionSize: "1 cup", VisualReference: "Baseball", Description: "One cup of rice is the size of a baseball."},
	{ID: "8", Name: "Chicken Biryani", Category: CategoryCarbs, Calories: 290, PortionSize: "1 cup", VisualReference: "Baseball", Description: "Keep a biryani serving to one baseball-sized cup."},
	{ID: "9", Name: "Roti", Category: CategoryCarbs, Calories: 110, PortionSize: "1 piece", VisualReference: "Compact Disc (CD)", Description: "A roti is about the diameter of a CD."},
	{ID: "10", Name: "Naan", Category: CategoryCarbs, Calories: 260, PortionSize: "1/2 piece", VisualReference: "Checkbook", Description: "Half a naan covers about a checkbook."},
	{ID: "11", Name: "Aloo Paratha", Category: CategoryCarbs, Calories: 300, PortionSize: "1 piece", VisualReference: "Compact Disc (CD)", Description: "One paratha is CD-sized; the filling adds up fast."},
	{ID: "12", Name: "Idli", Category: CategoryCarbs, Calories: 60, PortionSize: "2 pieces", VisualReference: "Hockey Puck", Description: "Each idli is about a hockey puck."},
	{ID: "13", Name: "Ghee", Category: CategoryFats, Calories: 120, PortionSize: "1 tbsp", VisualReference: "Poker Chip", Description: "A tablespoon of ghee is a poker chip's worth."},
	{ID: "14", Name: "Peanut Butter", Category: CategoryFats, Calories: 95, PortionSize: "1 tbsp", VisualReference: "Poker Chip", Description: "One poker chip of peanut butter per serving."},
	{ID: "15", Name: "Mixed Nuts", Category: CategoryFats, Calories: 170, PortionSize: "30g", VisualReference: "Golf Ball", Description: "A golf-ball-sized handful of nuts."},
	{ID: "16", Name: "Mango", Category: CategoryProduce, Calories: 100, PortionSize: "1 cup sliced", VisualReference: "Tennis Ball", Description: "A tennis ball of sliced mango is one serving."},
	{ID: "17", Name: "Banana", Category: CategoryProduce, Calories: 105, PortionSize: "1 medium", VisualReference: "Pencil", Description: "A medium banana is close to pencil length."},
	{ID: "18", Name: "Cucumber Salad", Category: CategoryProduce, Calories: 45, PortionSize: "1 cup", VisualReference: "Baseball", Description: "A baseball-sized bowl of salad."},
	{ID: "19", Name: "Cooked Spinach", Category: CategoryProduce, Calories: 40, PortionSize: "1/2 cup", VisualReference: "Tennis Ball (Half)", Description: "Half a tennis ball of cooked saag."},
	{ID: "20", Name: "Gulab Jamun", Category: CategorySweets, Calories: 150, PortionSize: "1 piece", VisualReference: "Golf Ball", Description: "One gulab jamun is golf-ball-sized."},
	{ID: "21", Name: "Kheer", Category: CategorySweets, Calories: 180, PortionSize: "1/2 cup", VisualReference: "Tennis Ball (Half)", Description: "Half a tennis ball of kheer."},
	{ID: "22", Name: "Jalebi", Category: CategorySweets, Calories: 150, PortionSize: "1 piece", VisualReference: "Compact Disc (CD)", Description: "One jalebi spiral, about CD diameter."},
	{ID: "23", Name: "Paneer", Category: CategoryDairy, Calories: 130, PortionSize: "40g", VisualReference: "4 Dice", Description: "A paneer portion stacks like four dice."},
	{ID: "24", Name: "Plain Yogurt", Category: CategoryDairy, Calories: 80, PortionSize: "1/2 cup", VisualReference: "Tennis Ball (Half)", Description: "Half a tennis ball of dahi."},
	{ID: "25", Name: "Cheese", Category: CategoryDairy, Calories: 110, PortionSize: "30g", VisualReference: "4 Dice", Description: "A cheese serving is four stacked dice."},
	{ID: "26", Name: "Samosa", Category: CategorySnacks, Calories: 130, PortionSize: "1 piece", VisualReference: "Computer Mouse", Description: "One samosa is roughly computer-mouse-sized."},
	{ID: "27", Name: "Pakora", Category: CategorySnacks, Calories: 90, PortionSize: "3 pieces", VisualReference: "Golf Ball", Description: "Each pakora is about a golf ball."},
	{ID: "28", Name: "Aloo Tikki", Category: CategorySnacks, Calories: 120, PortionSize: "1 piece", VisualReference: "Hockey Puck", Description: "One tikki is hockey-puck-sized."},
	{ID: "29", Name: "Mango Lassi", Category: CategoryBeverages, Calories: 170, PortionSize: "1 cup", VisualReference: "Baseball", Description: "Keep lassi to one baseball-sized cup."},
	{ID: "30", Name: "Masala Chai", Category: CategoryBeverages, Calories: 60, PortionSize: "1 cup", Description: "One standard cup with milk and sugar."},
}
