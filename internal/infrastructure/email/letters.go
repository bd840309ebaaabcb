package email

import (
	"fmt"
	"html"
	"strings"

	"start-academy.backend/internal/domain/entities"
)

// letterhead wraps paragraphs in the formal admissions letter layout used
// for every decision sent from the Office of Admissions.
func letterhead(studentName, applicationID string, paragraphs ...string) string {
	var sb strings.Builder
	sb.WriteString(`<!DOCTYPE html><html><head><meta charset="utf-8"><title>The Start Academy - Admission Decision</title></head>`)
	sb.WriteString(`<body style="font-family:'Times New Roman',Times,serif;background:#f5f5f5;padding:20px;">`)
	sb.WriteString(`<div style="max-width:700px;margin:0 auto;background:#ffffff;border:1px solid #ddd;">`)
	sb.WriteString(`<div style="padding:30px 40px 20px;border-bottom:2px solid #333;background:#fafafa;text-align:center;">`)
	sb.WriteString(`<div style="font-size:32px;font-weight:900;letter-spacing:4px;color:#333;">TSA</div>`)
	sb.WriteString(`<div style="color:#666;font-size:12px;line-height:1.4;">Office of Admissions and Financial Aid<br>The Start Academy<br>Astana, Kazakhstan<br>Phone: +77051028049<br>Application ID: `)
	sb.WriteString(html.EscapeString(applicationID))
	sb.WriteString(`</div></div><div style="padding:40px 50px 50px;">`)
	sb.WriteString(`<p style="color:#333;font-size:14px;">Dear ` + html.EscapeString(studentName) + `,</p>`)
	for _, p := range paragraphs {
		sb.WriteString(`<p style="color:#333;font-size:14px;line-height:1.6;text-align:justify;">` + p + `</p>`)
	}
	sb.WriteString(`<div style="margin-top:40px;"><p style="color:#333;font-size:14px;">Sincerely,</p>`)
	sb.WriteString(`<p style="color:#333;font-size:12px;">Olzhas Muktharov<br>Founder and CEO</p></div>`)
	sb.WriteString(`</div></div></body></html>`)
	return sb.String()
}

func verificationCodeHTML(code string) string {
	return fmt.Sprintf(`<p>Your verification code is <strong style="font-size:24px">%s</strong></p>`, html.EscapeString(code))
}

func applicationConfirmationHTML(fullName string) string {
	name := html.EscapeString(fullName)
	return `<div style="max-width:600px;margin:0 auto;font-family:Arial,sans-serif;">` +
		`<div style="background:#000000;padding:40px 20px;text-align:center;">` +
		`<div style="color:white;font-size:36px;font-weight:600;">TSa</div>` +
		`<h1 style="color:white;margin:0;font-size:28px;">Application Received!</h1></div>` +
		`<div style="background:white;padding:40px 20px;">` +
		`<h2 style="color:#333;margin-top:0;">Dear ` + name + `,</h2>` +
		`<p style="color:#666;line-height:1.6;">Thank you for applying to The Start Academy! We've successfully received your application and are excited to review your submission.</p>` +
		`<h3 style="color:#333;">What happens next?</h3>` +
		`<ul style="color:#666;line-height:1.6;">` +
		`<li>Our admissions team will carefully review your application</li>` +
		`<li>We'll evaluate your background, experience, and goals</li>` +
		`<li>You can expect to hear back from us within <strong>2-3 weeks</strong></li></ul>` +
		`<p style="color:#666;line-height:1.6;">If you have any questions in the meantime, please reach out to our team at olzhas@thestartacademy.com.</p>` +
		`</div></div>`
}

func applicationAlertHTML(app *entities.Application) string {
	var sb strings.Builder
	field := func(label, value string) {
		if value != "" {
			sb.WriteString(`<p><strong>` + label + `:</strong><br>` +
				strings.ReplaceAll(html.EscapeString(value), "\n", "<br>") + `</p>`)
		}
	}
	yesNo := func(b bool) string {
		if b {
			return "Yes"
		}
		return "No"
	}

	sb.WriteString(`<h1>New Application Received</h1>`)
	sb.WriteString(`<p>Application ID: ` + html.EscapeString(app.ID.String()) + `</p>`)
	sb.WriteString(`<h3>Personal Information</h3>`)
	field("Full Name", app.FullName)
	field("Email", app.Email)
	field("Age", fmt.Sprintf("%d", app.Age))
	field("Location", app.Location)
	sb.WriteString(`<h3>Education</h3>`)
	field("Current Education", app.CurrentEducation)
	field("Institution", app.Institution)
	field("Major", app.Major.String)
	if app.GraduationYear.Valid {
		field("Graduation Year", fmt.Sprintf("%d", app.GraduationYear.Int))
	}
	sb.WriteString(`<h3>Experience</h3>`)
	field("Work Experience", app.WorkExperience.String)
	field("Entrepreneurial Experience", app.EntrepreneurialExperience.String)
	field("Technical Skills", app.TechnicalSkills.String)
	sb.WriteString(`<h3>Essays</h3>`)
	field("Why The Start Academy", app.WhyProgram)
	field("Career Goals", app.CareerGoals)
	field("Biggest Challenge", app.BiggestChallenge.String)
	field("Unique Contribution", app.UniqueContribution.String)
	sb.WriteString(`<h3>Program Expectations</h3>`)
	field("Program Goals", app.ProgramGoals)
	field("Financial Aid", app.FinancialAid)
	sb.WriteString(`<h3>Commitment</h3>`)
	field("Serious Commitment", yesNo(app.CommitmentSerious))
	field("Dedicated Commitment", yesNo(app.CommitmentDedicated))
	return sb.String()
}

// decisionLetter returns the subject and body for a templated decision.
// Custom decisions are built by customLetterHTML instead.
func decisionLetter(decision entities.Decision, studentName, applicationID, aidAmount string) (string, string) {
	switch decision {
	case entities.DecisionAcceptance:
		return "Welcome to The Start Academy - You're Accepted!",
			letterhead(studentName, applicationID,
				acceptanceOpening, acceptanceEnrollment, acceptanceClosing,
				`<strong>Financial Aid Status:</strong> Based on your application, you will be participating in the program without financial assistance. The full program fee will be required as outlined in our enrollment materials.`)
	case entities.DecisionAcceptanceWithAid:
		return "Welcome to The Start Academy - You're Accepted!",
			letterhead(studentName, applicationID,
				acceptanceOpening, acceptanceEnrollment, acceptanceClosing,
				`<strong>Financial Aid Award</strong><br>We are delighted to offer you financial assistance to support your educational journey.<br><strong>Financial Aid Amount: $`+html.EscapeString(aidAmount)+` USD</strong><br>This award is based on your demonstrated need and exceptional potential.`)
	case entities.DecisionRejection:
		return "Application Update - The Start Academy",
			letterhead(studentName, applicationID,
				`Thank you for your application to The Start Academy's Entrepreneurship Program. We have completed our review of your application materials and regret to inform you that we are unable to offer you admission at this time.`,
				`This year we received an exceptionally strong pool of candidates, making our selection process highly competitive. While your application demonstrated many positive qualities, we were unable to offer admission to all qualified applicants due to the limited number of spaces available in our program.`,
				`We encourage you to continue pursuing your entrepreneurial goals and to consider reapplying to our program in the future. We wish you success in your academic and professional endeavors.`)
	case entities.DecisionDeferral:
		return "Application Update - The Start Academy",
			letterhead(studentName, applicationID,
				`Thank you for your application to The Start Academy's Entrepreneurship Program. After careful review of your application materials, we have decided to defer your application to our next admissions cycle.`,
				`This decision reflects the highly competitive nature of our admissions process and the exceptional quality of this year's applicant pool. While we cannot offer you admission at this time, we believe your application demonstrates significant potential and warrants further consideration.`,
				`Your application will be reconsidered during our next review period alongside new applicants. We will notify you of our final decision by the conclusion of our next admissions cycle.`)
	case entities.DecisionWaitlist:
		return "Waitlist Update - The Start Academy",
			letterhead(studentName, applicationID,
				`Thank you for your application to The Start Academy's Entrepreneurship Program. After careful consideration of your application materials, we have placed you on our waitlist for the upcoming academic year.`,
				`This decision reflects the highly competitive nature of our admissions process and the exceptional quality of applicants we received. While we cannot offer you admission at this time, your application demonstrates strong qualifications that warrant continued consideration.`,
				`Being placed on our waitlist means that you may be offered admission should space become available in our program. We will notify you promptly of any changes to your application status.`)
	default:
		return "Application Update - The Start Academy",
			letterhead(studentName, applicationID,
				`We have an update regarding your application to The Start Academy.`)
	}
}

const (
	acceptanceOpening    = `On behalf of The Start Academy I am pleased to congratulate you on your acceptance into our program for the upcoming cohort. We were very impressed by your entrepreneurial skills and vision as well as your commitment to innovation and leadership.`
	acceptanceEnrollment = `Enclosed with this letter, please find the necessary enrollment form for you to fill out and return by two weeks from today. You will be contacted upon receipt of the form by our student advisor, who will give you further information regarding scheduling. If you have any questions regarding this letter, please feel free to contact us at the admissions office by phone or email at olzhas@thestartacademy.com.`
	acceptanceClosing    = `We at The Start Academy are pleased to welcome you and feel that you will make a great addition to our student body. Thank you for your prompt attention and for choosing The Start Academy.`
)

func customLetterHTML(studentName, applicationID, body string) string {
	paragraphs := strings.Split(body, "\n\n")
	escaped := make([]string, 0, len(paragraphs))
	for _, p := range paragraphs {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		escaped = append(escaped, strings.ReplaceAll(html.EscapeString(p), "\n", "<br>"))
	}
	return letterhead(studentName, applicationID, escaped...)
}

func subscriptionWelcomeHTML() string {
	return `<h1>Welcome!</h1><p>Thank you for subscribing to The Start Academy's announcements. We'll keep you updated with the latest news and program dates.</p>`
}

func subscriberAlertHTML(subscriberEmail string) string {
	return `<p>A new user has subscribed for announcements: <strong>` + html.EscapeString(subscriberEmail) + `</strong></p>`
}
