package engine

import "strings"

type categoryBucket struct {
	Name     string
	Keywords []string
}

// Buckets are checked in order; the first one with a keyword present in the
// lowercased text wins. Order matters: essentials sit below shopping buckets
// so that classification (which treats reasonable categories as
// authoritative) still sees them through the literal-term rule.
var categoryBuckets = []categoryBucket{
	{Name: "electronics", Keywords: []string{"phone", "laptop", "tablet", "tv", "television", "console", "headphones", "camera", "gadget", "computer"}},
	{Name: "clothing", Keywords: []string{"shirt", "dress", "jacket", "jeans", "sweater", "coat", "clothes", "clothing"}},
	{Name: "shoes", Keywords: []string{"shoes", "sneakers", "boots", "heels", "trainers", "sandals"}},
	{Name: "accessories", Keywords: []string{"watch", "bag", "handbag", "jewelry", "sunglasses", "wallet", "belt"}},
	{Name: "home", Keywords: []string{"furniture", "sofa", "couch", "lamp", "mattress", "decor", "rug"}},
	{Name: "entertainment", Keywords: []string{"game", "concert", "movie", "cinema", "tickets", "streaming", "subscription"}},
	{Name: "dining", Keywords: []string{"restaurant", "dinner", "lunch", "brunch", "coffee", "takeout"}},
	{Name: "travel", Keywords: []string{"flight", "hotel", "trip", "vacation", "holiday", "airbnb"}},
	{Name: "groceries", Keywords: []string{"groceries", "grocery", "supermarket", "food"}},
	{Name: "medical", Keywords: []string{"medicine", "doctor", "pharmacy", "prescription", "dentist", "medical", "healthcare"}},
	{Name: "utilities", Keywords: []string{"rent", "mortgage", "electricity", "water bill", "gas bill", "internet bill", "utilities", "bills"}},
	{Name: "transportation", Keywords: []string{"bus pass", "train ticket", "metro", "fuel", "petrol", "commute"}},
	{Name: "education", Keywords: []string{"tuition", "course", "textbook", "school", "university"}},
	{Name: "childcare", Keywords: []string{"daycare", "babysitter", "childcare", "nursery"}},
}

const categoryGeneral = "general"

// InferCategory maps free text to a spending category via ordered keyword
// buckets, falling back to "general".
func InferCategory(text string) string {
	lowered := strings.ToLower(text)
	for _, bucket := range categoryBuckets {
		for _, keyword := range bucket.Keywords {
			if strings.Contains(lowered, keyword) {
				return bucket.Name
			}
		}
	}

	return categoryGeneral
}
