package model

// Choice families used by the HR survey. The frequency labels come in two
// polarities: for reverse-scored questions "Never" is the desirable answer.
var (
	freqPositive = []Choice{
		{Label: "Every time", Score: 5}, {Label: "Most of the time", Score: 4},
		{Label: "Sometime", Score: 3}, {Label: "At Time", Score: 2}, {Label: "Never", Score: 1},
	}
	freqNegative = []Choice{
		{Label: "Every time", Score: 1}, {Label: "Most of the time", Score: 2},
		{Label: "Sometime", Score: 3}, {Label: "At Time", Score: 4}, {Label: "Never", Score: 5},
	}
	qualityScale = []Choice{
		{Label: "Excellent", Score: 5}, {Label: "Very Good", Score: 4},
		{Label: "Good", Score: 3}, {Label: "Average", Score: 2}, {Label: "Poor", Score: 1},
	}
)

func yn(id, title string) Question {
	return ynScored(id, title, 1, 0)
}

func ynScored(id, title string, yes, no int) Question {
	return Question{ID: id, Title: title, Type: QuestionTypeRadio, Choices: []Choice{
		{Label: "Yes", Score: yes}, {Label: "No", Score: no},
	}}
}

func scale(id, title string, choices []Choice) Question {
	return Question{ID: id, Title: title, Type: QuestionTypeRadio, Choices: choices}
}

// HRQuestions is the employee survey: 1-5 scale plus two free-text items.
var HRQuestions = []Question{
	scale("q1", "Is there any work pressure in the café?", freqNegative),
	scale("q2", "Are you empowered to make decisions on the spot to help customers and immediately solve their problems/complaints?", freqPositive),
	scale("q3", "Do you receive regular performance reviews and constructive feedback from your SM / AM?", freqPositive),
	scale("q4", "Do you think there is any partiality or unfair treatment within team?", freqNegative),
	scale("q5", "Are you getting the training as per Wings program? What was the last training you got and when?", freqPositive),
	scale("q6", "Are you facing any issues with operational apps (Zing, Meal benefit, Jify) or any issues with PF, ESI, reimbursements, insurance & payslips?", freqNegative),
	scale("q7", "Have you gone through the HR Handbook on Zing / accepted all the policies?", qualityScale),
	scale("q8", "Are you satisfied with your current work schedule - working hours, breaks, timings, weekly offs & comp offs?", freqPositive),
	scale("q9", "How effectively does the team collaborate, and what factors contribute to that?", qualityScale),
	{ID: "q10", Title: "Name one of your colleagues who is very helpful on the floor", Type: QuestionTypeInput},
	{ID: "q11", Title: "Any suggestions or support required from the organization?", Type: QuestionTypeTextarea},
	scale("q12", "On a scale of 1 to 5 how do you rate your experience with TWC & why?", qualityScale),
}

// OperationsQuestions is the AM operations audit across the six COFFEE
// sections, all Yes/No.
var OperationsQuestions = []Question{
	// Cheerful Greeting
	yn("CG_1", "Is the store front area clean and maintained?"),
	yn("CG_2", "Is the signage clean and are all lights functioning?"),
	yn("CG_3", "Are the glass and doors smudge-free?"),
	yn("CG_4", "Do promotional displays reflect current offers?"),
	yn("CG_5", "Are POS tent cards as per the latest communication?"),
	yn("CG_6", "Are menu boards/DMB as per the latest communication?"),
	yn("CG_7", "Does the café have a welcoming environment (music, lighting, AC, aroma)?"),
	yn("CG_8", "Are washrooms cleaned and the checklist updated?"),
	yn("CG_9", "Is the FDU counter neat, fully stocked, and set as per the planogram?"),
	yn("CG_10", "Does the merch rack follow VM guidelines and attract attention?"),
	yn("CG_11", "Is staff grooming (uniform, jewellery, hair and makeup) as per standards?"),
	yn("CG_12", "Are all seating, furniture, and stations tidy and organized?"),
	yn("CG_13", "Is the engine area clean and ready for operations?"),
	// Order Taking Assistance
	yn("OTA_1", "Is suggestive selling happening at the POS?"),
	yn("OTA_2", "Is the POS partner updated on the latest promos and item availability?"),
	yn("OTA_3", "Has order-taking time been recorded for 5 customers?"),
	yn("OTA_4", "Is there sufficient cash and change at the POS?"),
	yn("OTA_5", "Are valid licenses displayed and expiries checked (medical reports)?"),
	yn("OTA_6", "Are cash audits completed and verified with the logbook?"),
	yn("OTA_7", "Are daily banking reports tallied?"),
	yn("OTA_8", "Has CPI been reviewed through the FAME pilot?"),
	yn("OTA_9", "Are Swiggy/Zomato metrics reviewed and stock control managed per availability?"),
	yn("OTA_10", "Are all food and drinks served as per SOP?"),
	yn("OTA_11", "Are food orders placed based on the 4-week sales trend?"),
	// Friendly & Accurate Service
	yn("FAS_1", "Is equipment cleaned and maintained?"),
	yn("FAS_2", "Are temperature checks done with the Therma Pen and logs updated?"),
	yn("FAS_3", "Is documentation (GRN, RSTN, STN & TO) completed?"),
	yn("FAS_4", "Is fast-moving SKU availability checked and validated with LS?"),
	yn("FAS_5", "Is the thawing chart validated against actual thawing?"),
	yn("FAS_6", "Are deployment roles clear, with coaching and appreciation done by the MOD?"),
	yn("FAS_7", "Are there no broken/unused tools stored in the store?"),
	yn("FAS_8", "Is garbage segregated properly (wet/dry)?"),
	yn("FAS_9", "Are LTO products served as per standards?"),
	yn("FAS_10", "Is the coffee and food dial-in process followed?"),
	yn("FAS_11", "Are R.O.A.S.T. and app orders executed accurately?"),
	yn("FAS_12", "Have 5 order service times been validated?"),
	yn("FAS_13", "Have open maintenance-related points been reviewed?"),
	// Feedback with Solution
	yn("FWS_1", "Has COGS been reviewed, with actions in place per last month P&L feedback?"),
	yn("FWS_2", "Have BSC targets vs achievements been reviewed?"),
	yn("FWS_3", "Has people budget vs actuals (labour cost/bench planning) been reviewed?"),
	yn("FWS_4", "Has variance in stock (physical vs system) been verified?"),
	yn("FWS_5", "Have the top 10 wastage items been reviewed?"),
	yn("FWS_6", "Have store utilities (units, chemical use) been reviewed?"),
	yn("FWS_7", "Have shift targets, briefings, and goal tracking been conducted?"),
	yn("FWS_8", "Have new staff training and bench plans been reviewed?"),
	yn("FWS_9", "Have Training and QA audits been reviewed?"),
	yn("FWS_10", "Has the duty roster been checked and attendance ensured as per ZingHR?"),
	yn("FWS_11", "Have temperature and thawing logs been validated?"),
	yn("FWS_12", "Have audit and data findings been cross-checked with store observations?"),
	yn("FWS_13", "Is the pest control layout updated?"),
	// Enjoyable Experience
	yn("ENJ_1", "Have 2 new and 2 repeat customers been engaged, with feedback documented?"),
	yn("ENJ_2", "Are seating and stations adjusted as per customer requirements?"),
	yn("ENJ_3", "Is the team proactively assisting customers?"),
	yn("ENJ_4", "Is CCTV checked to monitor customer service during peak hours?"),
	yn("ENJ_5", "Is CCTV backup (minimum 60 days) in place and are black spots checked?"),
	yn("ENJ_6", "Is opening/closing footage reviewed for correct practices?"),
	yn("ENJ_7", "Are guest areas free of personal items, with belongings kept in lockers?"),
	// Enthusiastic Exit
	yn("EX_1", "Are there no unresolved issues at exits?"),
	yn("EX_2", "Is the final interaction cheerful and courteous?"),
	yn("EX_3", "Has a consolidated action plan been created with the Store Manager?"),
	yn("EX_4", "Have top performers been recognized?"),
	yn("EX_5", "Have wins been celebrated and improvement areas communicated?"),
	yn("EX_6", "Has the team been motivated for ongoing improvement?"),
}

// TrainingQuestions is the training audit. Several items carry heavier
// weights, and a few penalize a "No" outright.
var TrainingQuestions = []Question{
	yn("TM_1", "FRM available at store?"),
	yn("TM_2", "BRM available at store?"),
	yn("TM_3", "One-pager – Hot/Cue Cards displayed?"),
	yn("TM_4", "One-pager – Cold/Cue Cards displayed?"),
	ynScored("TM_5", "Dial-in One-pager visible?", 2, 0),
	yn("TM_6", "New-launch learning material available?"),
	yn("TM_7", "COFFEE & HD Playbook in store?"),
	yn("TM_8", "MSDS, chemical chart and shelf life chart available?"),
	yn("TM_9", "Career Progression Chart & Reward Poster displayed?"),
	ynScored("LMS_1", "Orientation & Induction completed within 3 days of joining?", 4, -4),
	ynScored("LMS_2", "All assessments & knowledge checks completed on LMS?", 4, -4),
	ynScored("LMS_3", "Team uses LMS for new info & comms?", 2, 0),
	ynScored("Buddy_1", "Does the café have at least 2 certified Buddy Trainers?", 2, 0),
	ynScored("Buddy_2", "Have Buddy Trainers completed their Skill Check?", 2, 0),
	yn("Buddy_3", "Are trainees rostered with Buddy Trainers and working in the same shift?"),
	ynScored("Buddy_4", "Have Buddy Trainers attended the BT workshop?", 2, 0),
	ynScored("Buddy_5", "Can Buddy Trainers explain the 4-step training process effectively?", 2, 0),
	yn("Buddy_6", "Can Buddy Trainers navigate Zing LMS flawlessly?"),
	yn("NJ_1", "Is the OJT book available for all partners?"),
	yn("NJ_2", "Are trainees referring to the OJT book and completing their skill checks?"),
	yn("NJ_3", "Is training progression aligned with the Training Calendar/Plan?"),
	yn("NJ_4", "Are team members aware of post-barista training progressions?"),
	ynScored("NJ_5", "Have managers completed SHLP training as per the calendar?", 2, 0),
	ynScored("NJ_6", "Are there at least 2 FOSTAC-certified managers in the store?", 2, 0),
	ynScored("NJ_7", "Is ASM/SM training completed as per the Training Calendar?", 2, 0),
	ynScored("PK_1", "Are team members aware of current company communication?", 2, 0),
	ynScored("PK_2", "Ask a team member to conduct a Coffee Tasting & a Sampling", 2, 0),
	ynScored("PK_3", "Is Sampling being conducted as per the set guidelines?", 2, 0),
	ynScored("PK_4", "Is Coffee Tasting engaging and effective?", 2, 0),
	ynScored("PK_5", "Are team members aware of manual brewing methods and standards?", 2, 0),
	ynScored("PK_6", "Are partners following grooming standards?", 2, 0),
	ynScored("PK_7", "Ask questions about key topics: COFFEE, LEAST, ROAST, Dial-in, MSDS, Food Safety and Security.", 3, -3),
	{ID: "TSA_Food_Score", Title: "TSA Food Score (out of 10)", Type: QuestionTypeInput},
	{ID: "TSA_Coffee_Score", Title: "TSA Coffee Score (out of 10)", Type: QuestionTypeInput},
	{ID: "TSA_CX_Score", Title: "TSA CX Score (out of 10)", Type: QuestionTypeInput},
	yn("CX_1", "Is appropriate background music playing at the appropriate volume?"),
	yn("CX_2", "Is the store temperature comfortable?"),
	yn("CX_3", "Are the washrooms clean and well-maintained?"),
	yn("CX_4", "Is WiFi available and functioning properly?"),
	ynScored("CX_5", "Are marketing elements and displays set as per the VM guide?", 2, 0),
	yn("CX_6", "Is the store furniture clean and well-kept?"),
	yn("CX_7", "Ask - What do you understand by MA, CPI, Google, HD, QA, and App Feedback Scores?"),
	yn("CX_8", "Ask - What was the latest Mystery Audit score for the store?"),
	yn("CX_9", "Ask - What were the top two opportunity areas in Customer Experience last month?"),
	ynScored("AP_1", "Is the action plan Specific, Measurable, Achievable, Relevant, and Time-bound?", 1, -1),
	ynScored("AP_2", "Has the action plan been discussed with the trainee and agreed upon?", 2, 0),
	ynScored("AP_3", "Are follow-up dates scheduled to review progress on the action plan?", 2, 0),
}

// QAQuestions is the quality audit, all Yes/No on product standards.
var QAQuestions = []Question{
	yn("QA_1", "Are espresso shots pulled within the standard extraction window?"),
	yn("QA_2", "Is milk steamed to the standard temperature and texture?"),
	yn("QA_3", "Are beverages served within standard build times?"),
	yn("QA_4", "Do food items match the plating and portion standards?"),
	yn("QA_5", "Are expiry and secondary shelf-life labels accurate on all products?"),
	yn("QA_6", "Is the dial-in log completed for every grinder change?"),
	yn("QA_7", "Are recipe cards followed for LTO beverages?"),
	yn("QA_8", "Is food held at safe temperatures with logs maintained?"),
	yn("QA_9", "Are rejected or expired products discarded and recorded?"),
	yn("QA_10", "Does a taste panel of the core beverages meet standard?"),
}

// FinanceQuestions is the finance audit, all Yes/No on cash and controls.
var FinanceQuestions = []Question{
	yn("FIN_1", "Does the physical cash count match the system float?"),
	yn("FIN_2", "Are daily deposits banked within the cutoff?"),
	yn("FIN_3", "Are petty cash vouchers approved and within limits?"),
	yn("FIN_4", "Are refunds and voids supported by documentation?"),
	yn("FIN_5", "Is the safe access log maintained and countersigned?"),
	yn("FIN_6", "Are vendor invoices matched to GRNs before payment?"),
	yn("FIN_7", "Is stock variance within the monthly tolerance?"),
	yn("FIN_8", "Are discount and promo redemptions reconciled with the POS?"),
}

// QuestionsFor returns the catalog for one source.
func QuestionsFor(src Source) []Question {
	switch src {
	case SourceHR:
		return HRQuestions
	case SourceOperations:
		return OperationsQuestions
	case SourceTraining:
		return TrainingQuestions
	case SourceQA:
		return QAQuestions
	case SourceFinance:
		return FinanceQuestions
	}
	return nil
}

// AllSources lists the five checklist sources in analysis order.
var AllSources = []Source{SourceHR, SourceOperations, SourceTraining, SourceQA, SourceFinance}
