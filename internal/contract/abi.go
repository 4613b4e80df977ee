package contract

// ABI definitions for the deployed HR contracts. These are fixed schemas; the
// contracts themselves live outside this repository.

const taskTrackerABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"taskId","type":"uint256"},
		{"indexed":true,"name":"assigner","type":"address"},
		{"indexed":true,"name":"assignee","type":"address"},
		{"indexed":false,"name":"description","type":"string"},
		{"indexed":false,"name":"deadline","type":"uint256"}
	],"name":"TaskCreated","type":"event"},
	{"inputs":[
		{"internalType":"string","name":"_description","type":"string"},
		{"internalType":"uint256","name":"_deadline","type":"uint256"},
		{"internalType":"address","name":"_assignee","type":"address"}
	],"name":"createTask","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_taskId","type":"uint256"}],
	"name":"getTask","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"description","type":"string"},
		{"internalType":"uint256","name":"deadline","type":"uint256"},
		{"internalType":"address","name":"assigner","type":"address"},
		{"internalType":"address","name":"assignee","type":"address"},
		{"internalType":"uint8","name":"status","type":"uint8"}
	],"internalType":"struct TaskTracker.Task","name":"","type":"tuple"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getMyTasks","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"description","type":"string"},
		{"internalType":"uint256","name":"deadline","type":"uint256"},
		{"internalType":"address","name":"assigner","type":"address"},
		{"internalType":"address","name":"assignee","type":"address"},
		{"internalType":"uint8","name":"status","type":"uint8"}
	],"internalType":"struct TaskTracker.Task[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[
		{"internalType":"uint256","name":"_taskId","type":"uint256"},
		{"internalType":"uint8","name":"_newStatus","type":"uint8"}
	],"name":"updateTaskStatus","outputs":[],"stateMutability":"nonpayable","type":"function"}
]`

const noticeManagerABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"noticeId","type":"uint256"},
		{"indexed":true,"name":"sender","type":"address"},
		{"indexed":false,"name":"category","type":"string"},
		{"indexed":false,"name":"description","type":"string"},
		{"indexed":false,"name":"priority","type":"uint8"},
		{"indexed":false,"name":"content","type":"string"},
		{"indexed":false,"name":"timestamp","type":"uint256"}
	],"name":"NoticeCreated","type":"event"},
	{"inputs":[
		{"internalType":"string","name":"_category","type":"string"},
		{"internalType":"string","name":"_description","type":"string"},
		{"internalType":"uint8","name":"_priority","type":"uint8"},
		{"internalType":"string","name":"_content","type":"string"}
	],"name":"createNotice","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_noticeId","type":"uint256"}],
	"name":"getNotice","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"category","type":"string"},
		{"internalType":"string","name":"description","type":"string"},
		{"internalType":"uint8","name":"priority","type":"uint8"},
		{"internalType":"string","name":"content","type":"string"},
		{"internalType":"address","name":"sender","type":"address"},
		{"internalType":"uint256","name":"timestamp","type":"uint256"}
	],"internalType":"struct NoticeManager.Notice","name":"","type":"tuple"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"string","name":"_category","type":"string"}],
	"name":"getNoticesByCategory","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"category","type":"string"},
		{"internalType":"string","name":"description","type":"string"},
		{"internalType":"uint8","name":"priority","type":"uint8"},
		{"internalType":"string","name":"content","type":"string"},
		{"internalType":"address","name":"sender","type":"address"},
		{"internalType":"uint256","name":"timestamp","type":"uint256"}
	],"internalType":"struct NoticeManager.Notice[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"}
]`

const certificateAuthenticatorABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"certificateId","type":"uint256"},
		{"indexed":true,"name":"issuer","type":"address"},
		{"indexed":false,"name":"name","type":"string"},
		{"indexed":false,"name":"certificateHash","type":"string"},
		{"indexed":false,"name":"timestamp","type":"uint256"}
	],"name":"CertificateIssued","type":"event"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"certificateId","type":"uint256"}
	],"name":"CertificateRevoked","type":"event"},
	{"inputs":[
		{"internalType":"string","name":"_name","type":"string"},
		{"internalType":"string","name":"_certificateHash","type":"string"}
	],"name":"issueCertificate","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_certificateId","type":"uint256"}],
	"name":"revokeCertificate","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"string","name":"_certificateHash","type":"string"}],
	"name":"verifyCertificate","outputs":[{"internalType":"bool","name":"","type":"bool"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_certificateId","type":"uint256"}],
	"name":"getCertificate","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"name","type":"string"},
		{"internalType":"string","name":"certificateHash","type":"string"},
		{"internalType":"uint256","name":"timestamp","type":"uint256"},
		{"internalType":"address","name":"issuer","type":"address"},
		{"internalType":"bool","name":"isValid","type":"bool"}
	],"internalType":"struct CertificateAuthenticator.Certificate","name":"","type":"tuple"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getMyCertificates","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"name","type":"string"},
		{"internalType":"string","name":"certificateHash","type":"string"},
		{"internalType":"uint256","name":"timestamp","type":"uint256"},
		{"internalType":"address","name":"issuer","type":"address"},
		{"internalType":"bool","name":"isValid","type":"bool"}
	],"internalType":"struct CertificateAuthenticator.Certificate[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"}
]`

const leaveManagementABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"leaveId","type":"uint256"},
		{"indexed":true,"name":"employee","type":"address"},
		{"indexed":false,"name":"startDate","type":"uint256"},
		{"indexed":false,"name":"endDate","type":"uint256"},
		{"indexed":false,"name":"leaveType","type":"string"},
		{"indexed":false,"name":"reason","type":"string"}
	],"name":"LeaveRequested","type":"event"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"leaveId","type":"uint256"},
		{"indexed":true,"name":"approver","type":"address"},
		{"indexed":false,"name":"status","type":"uint8"}
	],"name":"LeaveStatusUpdated","type":"event"},
	{"inputs":[
		{"internalType":"uint256","name":"_startDate","type":"uint256"},
		{"internalType":"uint256","name":"_endDate","type":"uint256"},
		{"internalType":"string","name":"_leaveType","type":"string"},
		{"internalType":"string","name":"_reason","type":"string"}
	],"name":"requestLeave","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[
		{"internalType":"uint256","name":"_leaveId","type":"uint256"},
		{"internalType":"uint8","name":"_status","type":"uint8"}
	],"name":"updateLeaveStatus","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[],"name":"getMyLeaves","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"uint256","name":"startDate","type":"uint256"},
		{"internalType":"uint256","name":"endDate","type":"uint256"},
		{"internalType":"string","name":"leaveType","type":"string"},
		{"internalType":"string","name":"reason","type":"string"},
		{"internalType":"address","name":"employee","type":"address"},
		{"internalType":"uint8","name":"status","type":"uint8"}
	],"internalType":"struct LeaveManagement.Leave[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getPendingLeaves","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"uint256","name":"startDate","type":"uint256"},
		{"internalType":"uint256","name":"endDate","type":"uint256"},
		{"internalType":"string","name":"leaveType","type":"string"},
		{"internalType":"string","name":"reason","type":"string"},
		{"internalType":"address","name":"employee","type":"address"},
		{"internalType":"uint8","name":"status","type":"uint8"}
	],"internalType":"struct LeaveManagement.Leave[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[
		{"internalType":"uint256","name":"_date","type":"uint256"},
		{"internalType":"string","name":"_description","type":"string"}
	],"name":"addHoliday","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[],"name":"getHolidays","outputs":[{"components":[
		{"internalType":"uint256","name":"date","type":"uint256"},
		{"internalType":"string","name":"description","type":"string"}
	],"internalType":"struct LeaveManagement.Holiday[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_date","type":"uint256"}],
	"name":"markAttendance","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[
		{"internalType":"uint256","name":"_startDate","type":"uint256"},
		{"internalType":"uint256","name":"_endDate","type":"uint256"}
	],"name":"getAttendance","outputs":[{"components":[
		{"internalType":"uint256","name":"date","type":"uint256"},
		{"internalType":"bool","name":"present","type":"bool"}
	],"internalType":"struct LeaveManagement.Attendance[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"}
]`

const employeePaymentABI = `[
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"paymentId","type":"uint256"},
		{"indexed":false,"name":"employeeName","type":"string"},
		{"indexed":true,"name":"employeeAddress","type":"address"},
		{"indexed":false,"name":"description","type":"string"},
		{"indexed":false,"name":"amount","type":"uint256"},
		{"indexed":false,"name":"timestamp","type":"uint256"}
	],"name":"PaymentCreated","type":"event"},
	{"anonymous":false,"inputs":[
		{"indexed":true,"name":"paymentId","type":"uint256"},
		{"indexed":true,"name":"employeeAddress","type":"address"},
		{"indexed":false,"name":"amount","type":"uint256"},
		{"indexed":false,"name":"timestamp","type":"uint256"}
	],"name":"PaymentProcessed","type":"event"},
	{"inputs":[
		{"internalType":"string","name":"_employeeName","type":"string"},
		{"internalType":"address","name":"_employeeAddress","type":"address"},
		{"internalType":"string","name":"_description","type":"string"},
		{"internalType":"uint256","name":"_amount","type":"uint256"}
	],"name":"createPayment","outputs":[],"stateMutability":"nonpayable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_paymentId","type":"uint256"}],
	"name":"processPayment","outputs":[],"stateMutability":"payable","type":"function"},
	{"inputs":[{"internalType":"uint256","name":"_paymentId","type":"uint256"}],
	"name":"getPayment","outputs":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"employeeName","type":"string"},
		{"internalType":"address","name":"employeeAddress","type":"address"},
		{"internalType":"string","name":"description","type":"string"},
		{"internalType":"uint256","name":"amount","type":"uint256"},
		{"internalType":"uint256","name":"timestamp","type":"uint256"},
		{"internalType":"bool","name":"isPaid","type":"bool"}
	],"stateMutability":"view","type":"function"},
	{"inputs":[],"name":"getMyPayments","outputs":[{"components":[
		{"internalType":"uint256","name":"id","type":"uint256"},
		{"internalType":"string","name":"employeeName","type":"string"},
		{"internalType":"address","name":"employeeAddress","type":"address"},
		{"internalType":"string","name":"description","type":"string"},
		{"internalType":"uint256","name":"amount","type":"uint256"},
		{"internalType":"uint256","name":"timestamp","type":"uint256"},
		{"internalType":"bool","name":"isPaid","type":"bool"}
	],"internalType":"struct EmployeePayment.Payment[]","name":"","type":"tuple[]"}],
	"stateMutability":"view","type":"function"}
]`
