package agent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"orgnet/internal/domain"
)

// TaskOperations covers the task tooling surface.
type TaskOperations interface {
	CreateTask(ctx context.Context, description, deadline, assignee string) (domain.Outcome, error)
	UpdateTaskStatus(ctx context.Context, taskID uint64, status string) (domain.Outcome, error)
	GetTask(ctx context.Context, taskID uint64) (domain.Task, error)
	MyTasks(ctx context.Context) ([]domain.Task, error)
}

// CertificateOperations covers the certificate tooling surface.
type CertificateOperations interface {
	IssueCertificate(ctx context.Context, name, certificateHash string) (domain.Outcome, error)
	IssueCertificateFile(ctx context.Context, name, path string) (domain.Outcome, string, error)
	RevokeCertificate(ctx context.Context, certificateID uint64) (domain.Outcome, error)
	VerifyCertificate(ctx context.Context, certificateHash string) (bool, error)
	VerifyCertificateFile(ctx context.Context, path string) (bool, string, error)
	GetCertificate(ctx context.Context, certificateID uint64) (domain.Certificate, error)
	MyCertificates(ctx context.Context) ([]domain.Certificate, error)
}

// NoticeOperations covers the notice tooling surface.
type NoticeOperations interface {
	CreateNotice(ctx context.Context, category, description string, priority uint8, content string) (domain.Outcome, error)
	GetNotice(ctx context.Context, noticeID uint64) (domain.Notice, error)
	NoticesByCategory(ctx context.Context, category string) ([]domain.Notice, error)
}

// LeaveOperations covers the leave, holiday, and attendance tooling surface.
type LeaveOperations interface {
	RequestLeave(ctx context.Context, startDate, endDate, leaveType, reason string) (domain.Outcome, error)
	UpdateLeaveStatus(ctx context.Context, leaveID uint64, status string) (domain.Outcome, error)
	MyLeaves(ctx context.Context) ([]domain.Leave, error)
	PendingLeaves(ctx context.Context) ([]domain.Leave, error)
	AddHoliday(ctx context.Context, date, description string) (domain.Outcome, error)
	Holidays(ctx context.Context) ([]domain.Holiday, error)
	MarkAttendance(ctx context.Context, date string) (domain.Outcome, error)
	Attendance(ctx context.Context, startDate, endDate string) ([]domain.Attendance, error)
}

// PaymentOperations covers the payment tooling surface.
type PaymentOperations interface {
	CreatePayment(ctx context.Context, employeeName, employeeAddress, description, amount string) (domain.Outcome, error)
	ProcessPayment(ctx context.Context, paymentID uint64, amount string) (domain.Outcome, error)
	GetPayment(ctx context.Context, paymentID uint64) (domain.Payment, error)
	MyPayments(ctx context.Context) ([]domain.Payment, error)
}

// Operations is the full surface the tool catalog drives. *application.Services
// satisfies it.
type Operations interface {
	TaskOperations
	CertificateOperations
	NoticeOperations
	LeaveOperations
	PaymentOperations
}

// NewTools builds the complete tool catalog over the given operations.
func NewTools(ops Operations) []Tool {
	return []Tool{
		{
			Name:        "create_task",
			Description: "Create a new task on the blockchain with a description, deadline, and assignee",
			Schema:      json.RawMessage(`{"type":"object","properties":{"description":{"type":"string","description":"What the task requires"},"deadline":{"type":"string","description":"Deadline in YYYY-MM-DD HH:MM:SS format"},"assignee":{"type":"string","description":"Blockchain address of the assignee, starting with 0x"}},"required":["description","deadline","assignee"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				outcome, err := ops.CreateTask(ctx, args.String("description"), args.String("deadline"), args.String("assignee"))
				if err != nil {
					return failureText("creating task", err), err
				}
				return fmt.Sprintf("Task created successfully! Task ID: %d, Transaction: %s", outcome.EntityID, outcome.TxHash), nil
			},
		},
		{
			Name:        "update_task_status",
			Description: "Update the status of an existing task",
			Schema:      json.RawMessage(`{"type":"object","properties":{"task_id":{"type":"integer","description":"Identifier of the task to update"},"status":{"type":"string","description":"New status: Pending, In Progress, Completed, or Cancelled (status codes 0-3 also accepted)"}},"required":["task_id","status"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				taskID, ok := args.Uint("task_id")
				if !ok {
					err := domain.Errorf(domain.ErrValidation, "task_id must be a number")
					return failureText("updating task", err), err
				}
				outcome, err := ops.UpdateTaskStatus(ctx, taskID, args.String("status"))
				if err != nil {
					return failureText("updating task", err), err
				}
				return fmt.Sprintf("Task status updated successfully! Transaction: %s", outcome.TxHash), nil
			},
		},
		{
			Name:        "get_my_tasks",
			Description: "List every task assigned to or created by the caller",
			Schema:      emptySchema,
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				tasks, err := ops.MyTasks(ctx)
				if err != nil {
					return failureText("getting tasks", err), err
				}
				return renderTasks(tasks), nil
			},
		},
		{
			Name:        "get_task",
			Description: "Show one task by its identifier",
			Schema:      json.RawMessage(`{"type":"object","properties":{"task_id":{"type":"integer","description":"Identifier of the task"}},"required":["task_id"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				taskID, ok := args.Uint("task_id")
				if !ok {
					err := domain.Errorf(domain.ErrValidation, "task_id must be a number")
					return failureText("getting task", err), err
				}
				task, err := ops.GetTask(ctx, taskID)
				if err != nil {
					return failureText("getting task", err), err
				}
				return renderTask(task), nil
			},
		},
		{
			Name:        "issue_certificate",
			Description: "Issue a certificate on the blockchain for a person and verify it, from either a precomputed SHA-256 hash or a local artifact file",
			Schema:      json.RawMessage(`{"type":"object","properties":{"name":{"type":"string","description":"Name of the certificate holder"},"certificate_hash":{"type":"string","description":"SHA-256 hash of the certificate artifact as 64 hex characters"},"certificate_path":{"type":"string","description":"Path to a local artifact file to hash instead of certificate_hash"}},"required":["name"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				name := args.String("name")
				hash := strings.ToLower(strings.TrimSpace(args.String("certificate_hash")))
				path := strings.TrimSpace(args.String("certificate_path"))

				var outcome domain.Outcome
				var err error
				if path != "" {
					outcome, hash, err = ops.IssueCertificateFile(ctx, name, path)
				} else {
					outcome, err = ops.IssueCertificate(ctx, name, hash)
				}
				if err != nil {
					return failureText("issuing certificate", err), err
				}
				valid, err := ops.VerifyCertificate(ctx, hash)
				if err != nil {
					return failureText("verifying certificate", err), err
				}
				return fmt.Sprintf("✅ Certificate Process Complete!\n\n"+
					"Issuance Details:\n"+
					"----------------\n"+
					"Certificate ID: %d\n"+
					"Certificate Hash: %s\n"+
					"Transaction: %s\n\n"+
					"Verification Details:\n"+
					"-------------------\n"+
					"Status: %s\n"+
					"Certificate Hash: %s\n",
					outcome.EntityID, hash, outcome.TxHash, validityWord(valid), hash), nil
			},
		},
		{
			Name:        "verify_certificate",
			Description: "Verify whether a certificate hash or artifact file matches a valid certificate on the blockchain",
			Schema:      json.RawMessage(`{"type":"object","properties":{"certificate_hash":{"type":"string","description":"SHA-256 hash of the certificate artifact as 64 hex characters"},"certificate_path":{"type":"string","description":"Path to a local artifact file to hash instead of certificate_hash"}},"required":[]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				hash := strings.ToLower(strings.TrimSpace(args.String("certificate_hash")))
				path := strings.TrimSpace(args.String("certificate_path"))

				var valid bool
				var err error
				if path != "" {
					valid, hash, err = ops.VerifyCertificateFile(ctx, path)
				} else {
					valid, err = ops.VerifyCertificate(ctx, hash)
				}
				if err != nil {
					return failureText("verifying certificate", err), err
				}
				return fmt.Sprintf("Verification Details:\n"+
					"-------------------\n"+
					"Status: %s\n"+
					"Certificate Hash: %s\n", validityWord(valid), hash), nil
			},
		},
		{
			Name:        "revoke_certificate",
			Description: "Revoke a previously issued certificate by its identifier",
			Schema:      json.RawMessage(`{"type":"object","properties":{"certificate_id":{"type":"integer","description":"Identifier of the certificate to revoke"}},"required":["certificate_id"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				certificateID, ok := args.Uint("certificate_id")
				if !ok {
					err := domain.Errorf(domain.ErrValidation, "certificate_id must be a number")
					return failureText("revoking certificate", err), err
				}
				outcome, err := ops.RevokeCertificate(ctx, certificateID)
				if err != nil {
					return failureText("revoking certificate", err), err
				}
				return fmt.Sprintf("Certificate revoked successfully! Transaction: %s", outcome.TxHash), nil
			},
		},
		{
			Name:        "get_my_certificates",
			Description: "List every certificate issued by the caller",
			Schema:      emptySchema,
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				certs, err := ops.MyCertificates(ctx)
				if err != nil {
					return failureText("getting certificates", err), err
				}
				return renderCertificates(certs), nil
			},
		},
		{
			Name:        "get_certificate",
			Description: "Show one certificate by its identifier",
			Schema:      json.RawMessage(`{"type":"object","properties":{"certificate_id":{"type":"integer","description":"Identifier of the certificate"}},"required":["certificate_id"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				certificateID, ok := args.Uint("certificate_id")
				if !ok {
					err := domain.Errorf(domain.ErrValidation, "certificate_id must be a number")
					return failureText("getting certificate", err), err
				}
				cert, err := ops.GetCertificate(ctx, certificateID)
				if err != nil {
					return failureText("getting certificate", err), err
				}
				return renderCertificate(cert), nil
			},
		},
		{
			Name:        "create_notice",
			Description: "Create a notice for an organizational group with a priority level",
			Schema:      json.RawMessage(`{"type":"object","properties":{"category":{"type":"string","description":"Target group: managers, senior_employees, department_heads, all_employees, technical_team, hr_team, or finance_team"},"description":{"type":"string","description":"Short summary of the notice"},"priority":{"type":"integer","description":"Priority level 0-3 (Low, Medium, High, Urgent); names also accepted"},"content":{"type":"string","description":"Full notice text"}},"required":["category","description","priority","content"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				priority, ok := args.Uint("priority")
				if !ok {
					name := strings.TrimSpace(args.String("priority"))
					for i, level := range domain.PriorityLevels {
						if strings.EqualFold(level, name) {
							priority, ok = uint64(i), true
							break
						}
					}
				}
				if !ok || priority >= uint64(len(domain.PriorityLevels)) {
					err := domain.Errorf(domain.ErrValidation, "priority must be 0 (Low) through 3 (Urgent)")
					return failureText("creating notice", err), err
				}
				outcome, err := ops.CreateNotice(ctx, args.String("category"), args.String("description"), uint8(priority), args.String("content"))
				if err != nil {
					return failureText("creating notice", err), err
				}
				return fmt.Sprintf("Notice created successfully! Transaction: %s", outcome.TxHash), nil
			},
		},
		{
			Name:        "get_notices",
			Description: "List the notices posted for an organizational group",
			Schema:      json.RawMessage(`{"type":"object","properties":{"category":{"type":"string","description":"Target group: managers, senior_employees, department_heads, all_employees, technical_team, hr_team, or finance_team"}},"required":["category"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				notices, err := ops.NoticesByCategory(ctx, args.String("category"))
				if err != nil {
					return failureText("getting notices", err), err
				}
				return renderNotices(notices), nil
			},
		},
		{
			Name:        "get_notice",
			Description: "Show one notice by its identifier",
			Schema:      json.RawMessage(`{"type":"object","properties":{"notice_id":{"type":"integer","description":"Identifier of the notice"}},"required":["notice_id"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				noticeID, ok := args.Uint("notice_id")
				if !ok {
					err := domain.Errorf(domain.ErrValidation, "notice_id must be a number")
					return failureText("getting notice", err), err
				}
				notice, err := ops.GetNotice(ctx, noticeID)
				if err != nil {
					return failureText("getting notice", err), err
				}
				return renderNotice(notice), nil
			},
		},
		{
			Name:        "manage_leave",
			Description: "Request a leave or view the caller's leave requests",
			Schema:      json.RawMessage(`{"type":"object","properties":{"action":{"type":"string","description":"Either 'request' to submit a leave or 'view' to list existing requests"},"employee_address":{"type":"string","description":"Blockchain address of the employee, starting with 0x"},"start_date":{"type":"string","description":"First day of leave in YYYY-MM-DD format"},"end_date":{"type":"string","description":"Last day of leave in YYYY-MM-DD format"},"leave_type":{"type":"string","description":"Annual, Sick, Personal, Maternity/Paternity, or Unpaid"},"reason":{"type":"string","description":"Reason for the leave"}},"required":["action"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				if address := strings.TrimSpace(args.String("employee_address")); address != "" {
					if !strings.HasPrefix(address, "0x") || len(address) != 42 {
						err := domain.Errorf(domain.ErrValidation, "Invalid Monad address format. Address should start with '0x' and be 42 characters long")
						return failureText("managing leave", err), err
					}
				}
				action := strings.ToLower(strings.TrimSpace(args.String("action")))
				if action == "" {
					action = "request"
				}
				switch action {
				case "request":
					outcome, err := ops.RequestLeave(ctx, args.String("start_date"), args.String("end_date"), args.String("leave_type"), args.String("reason"))
					if err != nil {
						return failureText("requesting leave", err), err
					}
					return fmt.Sprintf("Leave request submitted successfully! Leave ID: %d, Transaction: %s", outcome.EntityID, outcome.TxHash), nil
				case "view":
					leaves, err := ops.MyLeaves(ctx)
					if err != nil {
						return failureText("getting leaves", err), err
					}
					return renderLeaves("Leave Requests:", leaves, false), nil
				default:
					err := domain.Errorf(domain.ErrValidation, "Invalid action '%s'. Supported actions are 'request' and 'view'", action)
					return failureText("managing leave", err), err
				}
			},
		},
		{
			Name:        "update_leave_status",
			Description: "Approve or reject a pending leave request",
			Schema:      json.RawMessage(`{"type":"object","properties":{"leave_id":{"type":"integer","description":"Identifier of the leave request"},"status":{"type":"string","description":"New status: Approved or Rejected (status codes 1-2 also accepted)"}},"required":["leave_id","status"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				leaveID, ok := args.Uint("leave_id")
				if !ok {
					err := domain.Errorf(domain.ErrValidation, "leave_id must be a number")
					return failureText("updating leave", err), err
				}
				outcome, err := ops.UpdateLeaveStatus(ctx, leaveID, args.String("status"))
				if err != nil {
					return failureText("updating leave", err), err
				}
				return fmt.Sprintf("Leave status updated successfully! Transaction: %s", outcome.TxHash), nil
			},
		},
		{
			Name:        "get_pending_leaves",
			Description: "List every pending leave request awaiting a decision",
			Schema:      emptySchema,
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				leaves, err := ops.PendingLeaves(ctx)
				if err != nil {
					return failureText("getting pending leaves", err), err
				}
				return renderLeaves("Pending Leave Requests:", leaves, true), nil
			},
		},
		{
			Name:        "add_holiday",
			Description: "Add a company holiday to the calendar",
			Schema:      json.RawMessage(`{"type":"object","properties":{"date":{"type":"string","description":"Holiday date in YYYY-MM-DD format"},"description":{"type":"string","description":"Name of the holiday"}},"required":["date","description"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				outcome, err := ops.AddHoliday(ctx, args.String("date"), args.String("description"))
				if err != nil {
					return failureText("adding holiday", err), err
				}
				return fmt.Sprintf("Holiday added successfully! Transaction: %s", outcome.TxHash), nil
			},
		},
		{
			Name:        "get_holidays",
			Description: "List the company holidays on the calendar",
			Schema:      emptySchema,
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				holidays, err := ops.Holidays(ctx)
				if err != nil {
					return failureText("getting holidays", err), err
				}
				return renderHolidays(holidays), nil
			},
		},
		{
			Name:        "mark_attendance",
			Description: "Mark the caller present for a working day",
			Schema:      json.RawMessage(`{"type":"object","properties":{"date":{"type":"string","description":"Working day in YYYY-MM-DD format"}},"required":["date"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				outcome, err := ops.MarkAttendance(ctx, args.String("date"))
				if err != nil {
					return failureText("marking attendance", err), err
				}
				return fmt.Sprintf("Attendance marked successfully! Transaction: %s", outcome.TxHash), nil
			},
		},
		{
			Name:        "get_attendance",
			Description: "List the caller's attendance records between two dates",
			Schema:      json.RawMessage(`{"type":"object","properties":{"start_date":{"type":"string","description":"First day in YYYY-MM-DD format"},"end_date":{"type":"string","description":"Last day in YYYY-MM-DD format"}},"required":["start_date","end_date"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				records, err := ops.Attendance(ctx, args.String("start_date"), args.String("end_date"))
				if err != nil {
					return failureText("getting attendance", err), err
				}
				return renderAttendance(records), nil
			},
		},
		{
			Name:        "process_employee_payment",
			Description: "Record an employee payment on the blockchain and optionally pay it immediately",
			Schema:      json.RawMessage(`{"type":"object","properties":{"employee_name":{"type":"string","description":"Name of the employee"},"employee_address":{"type":"string","description":"Blockchain address of the employee, starting with 0x"},"description":{"type":"string","description":"What the payment is for"},"amount":{"type":"string","description":"Amount as a whole number of wei"},"process_payment":{"type":"boolean","description":"Pay immediately after recording"}},"required":["employee_name","employee_address","description","amount"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				address := strings.TrimSpace(args.String("employee_address"))
				if !strings.HasPrefix(address, "0x") || len(address) != 42 {
					err := domain.Errorf(domain.ErrValidation, "Invalid Monad address format. Address should start with '0x' and be 42 characters long")
					return failureText("processing payment", err), err
				}
				amount := args.String("amount")
				outcome, err := ops.CreatePayment(ctx, args.String("employee_name"), address, args.String("description"), amount)
				if err != nil {
					return failureText("processing payment", err), err
				}
				var b strings.Builder
				fmt.Fprintf(&b, "✅ Payment Process Complete!\n\n"+
					"Payment Details:\n"+
					"---------------\n"+
					"Payment ID: %d\n"+
					"Create Transaction: %s\n"+
					"Block Number: %d\n",
					outcome.EntityID, outcome.TxHash, outcome.BlockNumber)
				if args.Bool("process_payment") {
					processed, err := ops.ProcessPayment(ctx, outcome.EntityID, amount)
					if err != nil {
						return failureText("processing payment", err), err
					}
					fmt.Fprintf(&b, "\nProcessing Details:\n"+
						"------------------\n"+
						"Process Transaction: %s\n"+
						"Process Block: %d\n",
						processed.TxHash, processed.BlockNumber)
				}
				return b.String(), nil
			},
		},
		{
			Name:        "get_payment",
			Description: "Show one payment record by its identifier",
			Schema:      json.RawMessage(`{"type":"object","properties":{"payment_id":{"type":"integer","description":"Identifier of the payment"}},"required":["payment_id"]}`),
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				paymentID, ok := args.Uint("payment_id")
				if !ok {
					err := domain.Errorf(domain.ErrValidation, "payment_id must be a number")
					return failureText("getting payment", err), err
				}
				payment, err := ops.GetPayment(ctx, paymentID)
				if err != nil {
					return failureText("getting payment", err), err
				}
				return renderPayment(payment), nil
			},
		},
		{
			Name:        "get_my_payments",
			Description: "List every payment recorded for the caller",
			Schema:      emptySchema,
			Handler: func(ctx context.Context, args Arguments) (string, error) {
				payments, err := ops.MyPayments(ctx)
				if err != nil {
					return failureText("getting payments", err), err
				}
				return renderPayments(payments), nil
			},
		},
	}
}

var emptySchema = json.RawMessage(`{"type":"object","properties":{}}`)

// failureText renders an operation failure as the reply text. Validation
// failures read as plain "Error: ..." lines; everything else names the
// operation that failed.
func failureText(operation string, err error) string {
	var de *domain.Error
	if !errors.As(err, &de) {
		return fmt.Sprintf("Error %s: %v", operation, err)
	}
	msg := de.Msg
	if de.Err != nil {
		msg += ": " + de.Err.Error()
	}
	if de.Kind == domain.ErrValidation {
		return "Error: " + msg
	}
	return fmt.Sprintf("Error %s: %s", operation, msg)
}

func validityWord(valid bool) string {
	if valid {
		return "valid"
	}
	return "invalid"
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}

func formatDateTime(ts uint64) string {
	return time.Unix(int64(ts), 0).UTC().Format("2006-01-02 15:04:05")
}

func formatDate(ts uint64) string {
	return time.Unix(int64(ts), 0).UTC().Format("2006-01-02")
}

func renderTasks(tasks []domain.Task) string {
	if len(tasks) == 0 {
		return "No tasks found."
	}
	var b strings.Builder
	b.WriteString("Your Tasks:\n")
	for _, task := range tasks {
		fmt.Fprintf(&b, "\nID: %d\n", task.ID)
		fmt.Fprintf(&b, "Description: %s\n", task.Description)
		fmt.Fprintf(&b, "Deadline: %s\n", formatDateTime(task.Deadline))
		fmt.Fprintf(&b, "Status: %s\n", task.StatusName())
		fmt.Fprintf(&b, "Assigner: %s\n", task.Assigner)
		fmt.Fprintf(&b, "Assignee: %s\n", task.Assignee)
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	return b.String()
}

func renderTask(task domain.Task) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task ID: %d\n", task.ID)
	fmt.Fprintf(&b, "Description: %s\n", task.Description)
	fmt.Fprintf(&b, "Deadline: %s\n", formatDateTime(task.Deadline))
	fmt.Fprintf(&b, "Status: %s\n", task.StatusName())
	fmt.Fprintf(&b, "Assigner: %s\n", task.Assigner)
	fmt.Fprintf(&b, "Assignee: %s\n", task.Assignee)
	return b.String()
}

func renderCertificate(cert domain.Certificate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Certificate ID: %d\n", cert.ID)
	fmt.Fprintf(&b, "Name: %s\n", cert.Name)
	fmt.Fprintf(&b, "Hash: %s\n", cert.Hash)
	fmt.Fprintf(&b, "Issued: %s\n", formatDateTime(cert.Timestamp))
	fmt.Fprintf(&b, "Issuer: %s\n", cert.Issuer)
	fmt.Fprintf(&b, "Valid: %s\n", yesNo(cert.Valid))
	return b.String()
}

func renderNotice(notice domain.Notice) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Notice ID: %d\n", notice.ID)
	fmt.Fprintf(&b, "Category: %s\n", notice.Category)
	fmt.Fprintf(&b, "Description: %s\n", notice.Description)
	fmt.Fprintf(&b, "Priority: %s\n", notice.PriorityName())
	fmt.Fprintf(&b, "Content: %s\n", notice.Content)
	fmt.Fprintf(&b, "Sender: %s\n", notice.Sender)
	fmt.Fprintf(&b, "Posted: %s\n", formatDateTime(notice.Timestamp))
	return b.String()
}

func renderCertificates(certs []domain.Certificate) string {
	if len(certs) == 0 {
		return "No certificates found."
	}
	var b strings.Builder
	b.WriteString("Issued Certificates:\n")
	for _, cert := range certs {
		fmt.Fprintf(&b, "\nCertificate ID: %d\n", cert.ID)
		fmt.Fprintf(&b, "Name: %s\n", cert.Name)
		fmt.Fprintf(&b, "Hash: %s\n", cert.Hash)
		fmt.Fprintf(&b, "Issued: %s\n", formatDateTime(cert.Timestamp))
		fmt.Fprintf(&b, "Valid: %s\n", yesNo(cert.Valid))
		b.WriteString(strings.Repeat("-", 50) + "\n")
	}
	return b.String()
}

func renderNotices(notices []domain.Notice) string {
	if len(notices) == 0 {
		return "No notices found."
	}
	var b strings.Builder
	b.WriteString("Notices:\n")
	for _, notice := range notices {
		fmt.Fprintf(&b, "\nID: %d\n", notice.ID)
		fmt.Fprintf(&b, "Category: %s\n", notice.Category)
		fmt.Fprintf(&b, "Description: %s\n", notice.Description)
		fmt.Fprintf(&b, "Priority: %s\n", notice.PriorityName())
		fmt.Fprintf(&b, "Content: %s\n", notice.Content)
		fmt.Fprintf(&b, "Sender: %s\n", notice.Sender)
		fmt.Fprintf(&b, "Posted: %s\n", formatDateTime(notice.Timestamp))
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	return b.String()
}

func renderLeaves(header string, leaves []domain.Leave, withEmployee bool) string {
	if len(leaves) == 0 {
		if withEmployee {
			return "No pending leave requests found."
		}
		return "No leave requests found."
	}
	var b strings.Builder
	b.WriteString(header + "\n")
	for _, leave := range leaves {
		fmt.Fprintf(&b, "\nID: %d\n", leave.ID)
		if withEmployee {
			fmt.Fprintf(&b, "Employee: %s\n", leave.Employee)
		}
		fmt.Fprintf(&b, "Start Date: %s\n", formatDate(leave.StartDate))
		fmt.Fprintf(&b, "End Date: %s\n", formatDate(leave.EndDate))
		fmt.Fprintf(&b, "Type: %s\n", leave.LeaveType)
		fmt.Fprintf(&b, "Status: %s\n", leave.StatusName())
		fmt.Fprintf(&b, "Reason: %s\n", leave.Reason)
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	return b.String()
}

func renderHolidays(holidays []domain.Holiday) string {
	if len(holidays) == 0 {
		return "No holidays found."
	}
	var b strings.Builder
	b.WriteString("Holidays:\n")
	for _, holiday := range holidays {
		fmt.Fprintf(&b, "\nDate: %s\n", formatDate(holiday.Date))
		fmt.Fprintf(&b, "Description: %s\n", holiday.Description)
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	return b.String()
}

func renderAttendance(records []domain.Attendance) string {
	if len(records) == 0 {
		return "No attendance records found."
	}
	var b strings.Builder
	b.WriteString("Attendance Records:\n")
	for _, record := range records {
		status := "Absent"
		if record.Present {
			status = "Present"
		}
		fmt.Fprintf(&b, "\nDate: %s\n", formatDate(record.Date))
		fmt.Fprintf(&b, "Status: %s\n", status)
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	return b.String()
}

func renderPayment(payment domain.Payment) string {
	amount := "0"
	if payment.Amount != nil {
		amount = payment.Amount.String()
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Payment ID: %d\n", payment.ID)
	fmt.Fprintf(&b, "Employee Name: %s\n", payment.EmployeeName)
	fmt.Fprintf(&b, "Employee Address: %s\n", payment.EmployeeAddress)
	fmt.Fprintf(&b, "Description: %s\n", payment.Description)
	fmt.Fprintf(&b, "Amount: %s wei\n", amount)
	fmt.Fprintf(&b, "Date: %s\n", formatDateTime(payment.Timestamp))
	fmt.Fprintf(&b, "Status: %s\n", paidWord(payment.Paid))
	return b.String()
}

func renderPayments(payments []domain.Payment) string {
	if len(payments) == 0 {
		return "No payments found."
	}
	var b strings.Builder
	b.WriteString("Your Payments:\n")
	for _, payment := range payments {
		amount := "0"
		if payment.Amount != nil {
			amount = payment.Amount.String()
		}
		fmt.Fprintf(&b, "\nID: %d\n", payment.ID)
		fmt.Fprintf(&b, "Employee Name: %s\n", payment.EmployeeName)
		fmt.Fprintf(&b, "Description: %s\n", payment.Description)
		fmt.Fprintf(&b, "Amount: %s wei\n", amount)
		fmt.Fprintf(&b, "Date: %s\n", formatDateTime(payment.Timestamp))
		fmt.Fprintf(&b, "Status: %s\n", paidWord(payment.Paid))
		b.WriteString(strings.Repeat("-", 40) + "\n")
	}
	return b.String()
}

func paidWord(paid bool) string {
	if paid {
		return "Paid"
	}
	return "Pending"
}
