package chatbot

import (
	"fmt"
	"strings"

	"saicollege/internal/models"
)

const (
	ReplyInternalError = "⚠️ Internal Error. Please try again."
	ReplyThanks        = "😊 Aapka swagat hai! Kuch aur poochh sakte ho."
	ReplyFeeCategory   = "Fee category select karo!"
	ReplyCategory      = "Category select karo!"
	ReplyGallery       = "📸 Gallery opening... Please wait!"

	replySuggestionTail = "\n\n❓ You can ask: Courses, Fees, Facilities, Admission, Contact"

	ReplyHelp = "😊 Sorry, I didn't understand your question.\n\n" +
		"You can ask these questions:\n\n" +
		"📍 What is the college address?\n" +
		"📞 What is the contact number?\n" +
		"💰 How much is BCA fees?\n" +
		"📚 What courses are available?\n" +
		"🚌 Is there bus facility?\n" +
		"⚽ What sports facilities are there?\n" +
		"📊 What is attendance policy?\n" +
		"📅 When is admission last date?\n\n" +
		"Or ask your question in simple words again! 🙏"
)

// Greeting returns the greeting for the visitor's language.
func Greeting(lang Language) string {
	switch lang {
	case Hindi:
		return "🙏 नमस्ते! साई कॉलेज में आपका स्वागत है। मैं आपकी मदद कर सकता हूं!"
	case English:
		return "👋 Hello! Welcome to Sai College. How can I help you?"
	default:
		return "👋 Hello! Sai College me aapka swagat hai. Kaise madad karu?"
	}
}

func replyPrincipal(kb *models.KnowledgeBase) string {
	return fmt.Sprintf("👩‍🏫 **Principal:** %s\n🎓 Qualification: %s\n💡 College ke academic head hain.",
		kb.Principal.Name, kb.Principal.Education)
}

func replyDirector(kb *models.KnowledgeBase) string {
	return fmt.Sprintf("👨‍💼 **Director:** %s\n🎓 Qualification: %s\n💬 Message: %s",
		kb.Director.Name, kb.Director.Role, kb.Director.Message)
}

const replySyllabus = "📄 **Syllabus & PDF Repository**\n\n" +
	"Humne sabhi courses aur semesters ke syllabus ek jagah upload kar diye hain.\n\n" +
	"Neeche click karke download karein:\n" +
	"👇👇👇\n" +
	"<a href='/syllabus' target='_blank' style='display:inline-block; margin-top:10px; padding:10px 15px; background:#e67e22; color:white; border-radius:5px; text-decoration:none; font-weight:bold;'>📂 Open Syllabus Page</a>"

// facilityHeadings holds the banner shown above a single facility's text.
var facilityHeadings = map[string]string{
	"transport":  "🚌 **TRANSPORT FACILITY:**",
	"hostel":     "🏠 **HOSTEL FACILITY:**",
	"labs":       "🔬 **LAB FACILITIES:**",
	"library":    "📚 **LIBRARY FACILITY:**",
	"sports":     "⚽ **SPORTS FACILITIES:**",
	"incubation": "🏭 **INCUBATION CENTRE:**",
}

func replyFacility(kb *models.KnowledgeBase, key string) string {
	text, _ := kb.Facility(key)
	return facilityHeadings[key] + "\n\n" + text
}

// allFacilityKeys are the facilities listed, in order, by the combined block.
var allFacilityKeys = []string{"labs", "library", "hostel", "sports", "transport"}

func replyAllFacilities(kb *models.KnowledgeBase) string {
	labels := map[string]string{
		"labs":      "🔬 LABS",
		"library":   "📚 LIBRARY",
		"hostel":    "🏠 HOSTEL",
		"sports":    "🏃‍♂️ SPORTS",
		"transport": "🚌 TRANSPORT",
	}
	parts := make([]string, len(allFacilityKeys))
	for i, key := range allFacilityKeys {
		text, _ := kb.Facility(key)
		parts[i] = labels[key] + "\n" + text
	}
	return "🏫 **Sai College Facilities:**\n\n" + strings.Join(parts, "\n\n")
}

const replyFacilitiesMenu = "🏫 **Facilities Available:**\n\n" +
	"🔬 Labs & Internet\n📚 Library & Reading Room\n🏠 Hostel\n🏃‍♂️ Sports\n🏭 Incubation Centre\n🚌 Bus Service\n\n" +
	"💡 Details ke liye type karein: 'Bus', 'Library' ya 'Sports'."

func replyContact(kb *models.KnowledgeBase) string {
	return fmt.Sprintf("📞 Contact: %s\n\n📧 Email: %s\n\n🌐 Website: %s\n\n📍 Address: %s\n\n🗺️ Google Map: %s\n\n🚉 Railway Station: Bhilai Nagar (200m)",
		kb.Phone, kb.Email, kb.Website, kb.Address, kb.MapLink)
}

const mainGateImage = `<img src="/static/images/main_gate.jpg" style="width:100%; border-radius:10px; margin-bottom:10px; border: 2px solid #fff; box-shadow: 0 4px 6px rgba(0,0,0,0.1);" alt="Sai College Main Gate"><br>`

func replyAbout(kb *models.KnowledgeBase) string {
	return mainGateImage + fmt.Sprintf("🎓 **%s**\n\n📍 %s\n\n⭐ %s\n\n👨‍💼 Director: %s\n👩‍🏫 Principal: %s\n\n🌐 %s",
		kb.Name, kb.Address, kb.Accreditation, kb.Director.Name, kb.Principal.Name, kb.Website)
}

func replyCourse(kb *models.KnowledgeBase, c models.Course) string {
	return fmt.Sprintf("🎯 %s\n\n⏱️ Duration: %s\n💰 Fees: %s\n\n📖 %s\n\n📞 Admission: %s",
		c.Name, c.Duration, c.Fee, c.Description, kb.Phone)
}

func replyCourseFee(c models.Course) string {
	return fmt.Sprintf("💰 %s: %s (%s)", c.Name, c.Fee, c.Duration)
}

var levelLabels = map[models.CourseLevel]string{
	models.LevelUG:      "UG",
	models.LevelPG:      "PG",
	models.LevelDiploma: "Diploma",
}

func replyFeeListing(kb *models.KnowledgeBase, level models.CourseLevel) string {
	var b strings.Builder
	fmt.Fprintf(&b, "💰 %s Course Fees:\n\n", levelLabels[level])
	for _, c := range kb.Courses(level) {
		fmt.Fprintf(&b, "🎓 %s: %s (%s)\n", c.Name, c.Fee, c.Duration)
	}
	return b.String()
}

var levelBanners = map[models.CourseLevel]string{
	models.LevelUG:      "🏛️ **Available Undergraduate Courses:**\n\n(Ye rahe humare sabhi UG courses)\n\n",
	models.LevelPG:      "🏛️ **Available Postgraduate Courses:**\n\n(Ye rahe humare sabhi PG courses)\n\n",
	models.LevelDiploma: "🏛️ **Available Diploma Courses:**\n\n(Computer & IT Diploma Courses)\n\n",
}

func replyCourseListing(kb *models.KnowledgeBase, level models.CourseLevel) string {
	var b strings.Builder
	b.WriteString(levelBanners[level])
	for _, c := range kb.Courses(level) {
		fmt.Fprintf(&b, "🎓 **%s**\n⏱️ Duration: %s\n💰 Fee: %s\n\n", c.Name, c.Duration, c.Fee)
	}
	b.WriteString("💡 Kisi bhi course ka naam type karein full details ke liye.")
	return b.String()
}

func replyAdmissionDeadline(kb *models.KnowledgeBase) string {
	return "📅 ADMISSION LAST DATE:\n\n" +
		"🗓️ Last Date: 30th June 2026\n\n" +
		"⚠️ Apply soon - Limited seats!\n\n" +
		fmt.Sprintf("📝 Online Form: %s\n📞 Helpline: %s\n\n", kb.Website, kb.Phone) +
		"💡 Visit college campus for offline admission too!"
}

func replyAdmissionProcess(kb *models.KnowledgeBase) string {
	return "📋 ADMISSION PROCESS:\n\n" +
		"✅ ELIGIBILITY:\n" +
		"• UG Courses: 10+2 pass\n" +
		"• PG Courses: Graduation pass\n\n" +
		"📝 PROCESS:\n" +
		"1️⃣ Visit college campus\n" +
		"2️⃣ Fill admission form\n" +
		"3️⃣ Submit required documents\n" +
		"4️⃣ Pay course fees\n\n" +
		"📄 REQUIRED DOCUMENTS:\n" +
		"• 10th/12th Marksheet\n" +
		"• Transfer Certificate (TC)\n" +
		"• Character Certificate\n" +
		"• Caste Certificate (if applicable)\n" +
		"• Aadhaar Card\n" +
		"• Passport size photos (4-5)\n\n" +
		fmt.Sprintf("📞 Contact: %s\n🌐 Website: %s\n\n", kb.Phone, kb.Website) +
		"💡 Fees instalment facility available!"
}

func replySemesterSystem(kb *models.KnowledgeBase) string {
	return "📖 SEMESTER SYSTEM:\n\n" +
		"✅ SEMESTER-BASED COURSES:\n" +
		"🎓 UG: BCA, BBA, B.Com, BSc (Biotech/CS/Maths/Bio), BA\n" +
		"🎓 PG: MSc (Biotech/CS/Chemistry), M.Com, M.A. (English)\n\n" +
		"📅 PATTERN:\n" +
		"• 2 Semesters per year\n" +
		"• UG: Total 6 semesters (3 years)\n" +
		"• PG: Total 4 semesters (2 years)\n\n" +
		"📝 EXAM TYPES:\n" +
		"• Mid-semester exams (internal)\n" +
		"• End-semester exams (external)\n\n" +
		"📞 " + kb.Phone
}

func replyAttendance(kb *models.KnowledgeBase) string {
	return "📊 Attendance Policy:\n\n" +
		"✅ Minimum Required: 75%\n" +
		"⚠️ If below 75%:\n" +
		"- Cannot sit in exam\n" +
		"- Can apply for condonation\n\n" +
		"🏥 Medical Leave:\n" +
		"- Medical certificate required\n\n" +
		"💡 Attend classes regularly!\n\n" +
		"📞 " + kb.Phone
}

func replyExamPattern(kb *models.KnowledgeBase) string {
	return "📝 Exam Pattern:\n\n" +
		"📚 Theory Papers:\n" +
		"- Internal: 30 marks\n" +
		"- External: 70 marks\n" +
		"- Total: 100 marks\n\n" +
		"💻 Practical Papers:\n" +
		"- Internal: 20 marks\n" +
		"- External: 30 marks\n" +
		"- Total: 50 marks\n\n" +
		"📅 Exams:\n" +
		"- Mid-semester exam\n" +
		"- End-semester exam\n\n" +
		"📞 " + kb.Phone
}

func replyScholarship(kb *models.KnowledgeBase) string {
	return "💰 SCHOLARSHIP FACILITIES:\n\n" +
		"✅ GOVERNMENT SCHOLARSHIPS:\n" +
		"🎓 SC/ST Scholarship\n" +
		"🎓 OBC Scholarship\n" +
		"🎓 EWS (Economically Weaker Section)\n\n" +
		"✅ MERIT-BASED:\n" +
		"🏆 75%+ marks: Fee concession\n" +
		"🏆 Rank holders: Special scholarship\n\n" +
		"✅ SPORTS QUOTA:\n" +
		"🏃‍♂️ State-level players: Fee concession\n" +
		"🏃‍♂️ National-level players: Higher concession\n\n" +
		"📋 REQUIRED DOCUMENTS:\n" +
		"• Caste Certificate (for SC/ST/OBC)\n" +
		"• Income Certificate (for EWS)\n" +
		"• Previous year marksheet\n\n" +
		"📞 Details: " + kb.Phone
}

func replyPlacement(kb *models.KnowledgeBase) string {
	return "💼 PLACEMENT CELL:\n\n" +
		"🏢 TOP COMPANIES:\n" +
		"• TCS\n• Wipro\n• ICICI Bank\n• HDFC Bank\n• Mahindra Finance\n• Bajaj Finance\n\n" +
		"💰 PACKAGE RANGE:\n" +
		"• Average: 3-4 LPA\n" +
		"• Highest: 6 LPA\n\n" +
		"📚 TRAINING PROVIDED:\n" +
		"• Interview Skills\n• Group Discussion\n• Personality Development\n• Resume Building\n• Aptitude Training\n\n" +
		"🎯 INTERNSHIP OPPORTUNITIES:\n" +
		"• Summer internships\n• Live projects\n• Industry exposure\n\n" +
		"📞 " + kb.Phone
}

func replySuggestion(suggestion string) string {
	return suggestion + replySuggestionTail
}
