package contract

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
)

func packOutputs(t *testing.T, b *Binding, method string, values ...interface{}) []byte {
	t.Helper()
	m, ok := b.abi.Methods[method]
	if !ok {
		t.Fatalf("%s missing from %s ABI", method, b.Name())
	}
	data, err := m.Outputs.Pack(values...)
	if err != nil {
		t.Fatalf("packing %s outputs: %v", method, err)
	}
	return data
}

func TestDecodeTask(t *testing.T) {
	assigner := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	assignee := common.HexToAddress("0x00000000000000000000000000000000000000bb")
	data := packOutputs(t, TaskTracker, "getTask", rawTask{
		Id:          big.NewInt(3),
		Description: "quarterly report",
		Deadline:    big.NewInt(1735689600),
		Assigner:    assigner,
		Assignee:    assignee,
		Status:      1,
	})

	task, err := DecodeTask(data)
	if err != nil {
		t.Fatalf("DecodeTask: %v", err)
	}
	if task.ID != 3 || task.Description != "quarterly report" || task.Deadline != 1735689600 {
		t.Fatalf("unexpected task: %+v", task)
	}
	if task.Assigner != assigner.Hex() || task.Assignee != assignee.Hex() {
		t.Fatalf("unexpected addresses: %+v", task)
	}
	if task.StatusName() != "In Progress" {
		t.Fatalf("StatusName() = %q, want %q", task.StatusName(), "In Progress")
	}
}

func TestDecodeTaskList(t *testing.T) {
	addr := common.HexToAddress("0x00000000000000000000000000000000000000aa")
	data := packOutputs(t, TaskTracker, "getMyTasks", []rawTask{
		{Id: big.NewInt(1), Description: "one", Deadline: big.NewInt(10), Assigner: addr, Assignee: addr, Status: 0},
		{Id: big.NewInt(2), Description: "two", Deadline: big.NewInt(20), Assigner: addr, Assignee: addr, Status: 2},
	})

	tasks, err := DecodeTaskList(data)
	if err != nil {
		t.Fatalf("DecodeTaskList: %v", err)
	}
	if len(tasks) != 2 {
		t.Fatalf("len(tasks) = %d, want 2", len(tasks))
	}
	if tasks[0].ID != 1 || tasks[1].ID != 2 {
		t.Fatalf("unexpected ids: %d, %d", tasks[0].ID, tasks[1].ID)
	}
	if tasks[1].StatusName() != "Completed" {
		t.Fatalf("StatusName() = %q, want %q", tasks[1].StatusName(), "Completed")
	}
}

func TestDecodeTaskListEmpty(t *testing.T) {
	data := packOutputs(t, TaskTracker, "getMyTasks", []rawTask{})
	tasks, err := DecodeTaskList(data)
	if err != nil {
		t.Fatalf("DecodeTaskList: %v", err)
	}
	if len(tasks) != 0 {
		t.Fatalf("len(tasks) = %d, want 0", len(tasks))
	}
}

func TestDecodeTaskListRejectsEmptyData(t *testing.T) {
	if _, err := DecodeTaskList(nil); err == nil {
		t.Fatal("expected error for empty call result")
	}
}

func TestDecodeNotice(t *testing.T) {
	sender := common.HexToAddress("0x00000000000000000000000000000000000000cc")
	data := packOutputs(t, NoticeManager, "getNotice", rawNotice{
		Id:          big.NewInt(5),
		Category:    "hr_team",
		Description: "policy update",
		Priority:    3,
		Content:     "remote work policy changes next month",
		Sender:      sender,
		Timestamp:   big.NewInt(1720000000),
	})

	notice, err := DecodeNotice(data)
	if err != nil {
		t.Fatalf("DecodeNotice: %v", err)
	}
	if notice.ID != 5 || notice.Category != "hr_team" || notice.Sender != sender.Hex() {
		t.Fatalf("unexpected notice: %+v", notice)
	}
	if notice.PriorityName() != "Urgent" {
		t.Fatalf("PriorityName() = %q, want %q", notice.PriorityName(), "Urgent")
	}
}

func TestDecodeCertificateList(t *testing.T) {
	issuer := common.HexToAddress("0x00000000000000000000000000000000000000dd")
	data := packOutputs(t, CertificateAuthenticator, "getMyCertificates", []rawCertificate{
		{Id: big.NewInt(9), Name: "Go Cert", CertificateHash: "ab12", Timestamp: big.NewInt(1), Issuer: issuer, IsValid: true},
	})

	certs, err := DecodeCertificateList(data)
	if err != nil {
		t.Fatalf("DecodeCertificateList: %v", err)
	}
	if len(certs) != 1 {
		t.Fatalf("len(certs) = %d, want 1", len(certs))
	}
	if certs[0].ID != 9 || certs[0].Hash != "ab12" || !certs[0].Valid {
		t.Fatalf("unexpected certificate: %+v", certs[0])
	}
}

func TestDecodeVerification(t *testing.T) {
	for _, want := range []bool{true, false} {
		data := packOutputs(t, CertificateAuthenticator, "verifyCertificate", want)
		got, err := DecodeVerification(data)
		if err != nil {
			t.Fatalf("DecodeVerification: %v", err)
		}
		if got != want {
			t.Fatalf("DecodeVerification = %v, want %v", got, want)
		}
	}
}

func TestDecodeLeaveList(t *testing.T) {
	employee := common.HexToAddress("0x00000000000000000000000000000000000000ee")
	rows := []rawLeave{
		{Id: big.NewInt(4), StartDate: big.NewInt(100), EndDate: big.NewInt(200), LeaveType: "Sick", Reason: "flu", Employee: employee, Status: 0},
	}
	for _, method := range []string{"getMyLeaves", "getPendingLeaves"} {
		data := packOutputs(t, LeaveManagement, method, rows)
		leaves, err := DecodeLeaveList(method, data)
		if err != nil {
			t.Fatalf("DecodeLeaveList(%s): %v", method, err)
		}
		if len(leaves) != 1 || leaves[0].ID != 4 || leaves[0].LeaveType != "Sick" {
			t.Fatalf("DecodeLeaveList(%s) = %+v", method, leaves)
		}
		if leaves[0].StatusName() != "Pending" {
			t.Fatalf("StatusName() = %q, want %q", leaves[0].StatusName(), "Pending")
		}
	}
}

func TestDecodeHolidayList(t *testing.T) {
	data := packOutputs(t, LeaveManagement, "getHolidays", []rawHoliday{
		{Date: big.NewInt(1735689600), Description: "New Year"},
	})
	holidays, err := DecodeHolidayList(data)
	if err != nil {
		t.Fatalf("DecodeHolidayList: %v", err)
	}
	if len(holidays) != 1 || holidays[0].Date != 1735689600 || holidays[0].Description != "New Year" {
		t.Fatalf("unexpected holidays: %+v", holidays)
	}
}

func TestDecodeAttendanceList(t *testing.T) {
	data := packOutputs(t, LeaveManagement, "getAttendance", []rawAttendance{
		{Date: big.NewInt(100), Present: true},
		{Date: big.NewInt(200), Present: false},
	})
	marks, err := DecodeAttendanceList(data)
	if err != nil {
		t.Fatalf("DecodeAttendanceList: %v", err)
	}
	if len(marks) != 2 || !marks[0].Present || marks[1].Present {
		t.Fatalf("unexpected attendance: %+v", marks)
	}
}

func TestDecodePayment(t *testing.T) {
	employee := common.HexToAddress("0x00000000000000000000000000000000000000ee")
	data := packOutputs(t, EmployeePayment, "getPayment",
		big.NewInt(11), "Jane Doe", employee, "July salary", big.NewInt(1500), big.NewInt(1720000000), true)

	payment, err := DecodePayment(data)
	if err != nil {
		t.Fatalf("DecodePayment: %v", err)
	}
	if payment.ID != 11 || payment.EmployeeName != "Jane Doe" || !payment.Paid {
		t.Fatalf("unexpected payment: %+v", payment)
	}
	if payment.Amount.Cmp(big.NewInt(1500)) != 0 {
		t.Fatalf("Amount = %s, want 1500", payment.Amount)
	}
	if payment.EmployeeAddress != employee.Hex() {
		t.Fatalf("EmployeeAddress = %s, want %s", payment.EmployeeAddress, employee.Hex())
	}
}

func TestDecodePaymentList(t *testing.T) {
	employee := common.HexToAddress("0x00000000000000000000000000000000000000ee")
	data := packOutputs(t, EmployeePayment, "getMyPayments", []rawPayment{
		{Id: big.NewInt(1), EmployeeName: "A", EmployeeAddress: employee, Description: "d", Amount: big.NewInt(10), Timestamp: big.NewInt(1), IsPaid: false},
	})
	payments, err := DecodePaymentList(data)
	if err != nil {
		t.Fatalf("DecodePaymentList: %v", err)
	}
	if len(payments) != 1 || payments[0].ID != 1 || payments[0].Paid {
		t.Fatalf("unexpected payments: %+v", payments)
	}
}
