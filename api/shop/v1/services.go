package shopv1

import (
	"context"

	"google.golang.org/grpc"
)

// AuthServiceServer signs employees in and changes passwords. Both methods are callable without a token.
type AuthServiceServer interface {
	Login(context.Context, *LoginRequest) (*LoginResponse, error)
	ChangePassword(context.Context, *ChangePasswordRequest) (*Empty, error)
}

const AuthServiceName = pkg + "AuthService"

// AuthServiceMethod returns the full method name used by interceptors.
func AuthServiceMethod(method string) string { return "/" + AuthServiceName + "/" + method }

var AuthService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: AuthServiceName,
	HandlerType: (*AuthServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(AuthServiceName, "Login", AuthServiceServer.Login),
		unary(AuthServiceName, "ChangePassword", AuthServiceServer.ChangePassword),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coffeeshop/v1/auth.json",
}

func RegisterAuthServiceServer(s grpc.ServiceRegistrar, srv AuthServiceServer) {
	s.RegisterService(&AuthService_ServiceDesc, srv)
}

type AuthServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewAuthServiceClient(cc grpc.ClientConnInterface) *AuthServiceClient {
	return &AuthServiceClient{cc: cc}
}

func (c *AuthServiceClient) Login(ctx context.Context, in *LoginRequest, opts ...grpc.CallOption) (*LoginResponse, error) {
	return invoke[LoginResponse](ctx, c.cc, AuthServiceMethod("Login"), in, opts)
}

func (c *AuthServiceClient) ChangePassword(ctx context.Context, in *ChangePasswordRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, AuthServiceMethod("ChangePassword"), in, opts)
}

// CatalogServiceServer manages products and the category and unit lookups.
type CatalogServiceServer interface {
	ListProducts(context.Context, *ListProductsRequest) (*ListProductsResponse, error)
	GetProduct(context.Context, *IDRequest) (*ProductResponse, error)
	CreateProduct(context.Context, *ProductInput) (*ProductResponse, error)
	UpdateProduct(context.Context, *UpdateProductRequest) (*ProductResponse, error)
	DeleteProduct(context.Context, *IDRequest) (*Empty, error)
	ListCategories(context.Context, *Empty) (*ListCategoriesResponse, error)
	CreateCategory(context.Context, *NameRequest) (*CategoryResponse, error)
	ListUnits(context.Context, *Empty) (*ListUnitsResponse, error)
	CreateUnit(context.Context, *NameRequest) (*UnitResponse, error)
}

const CatalogServiceName = pkg + "CatalogService"

// CatalogServiceMethod returns the full method name used by interceptors.
func CatalogServiceMethod(method string) string { return "/" + CatalogServiceName + "/" + method }

var CatalogService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CatalogServiceName,
	HandlerType: (*CatalogServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CatalogServiceName, "ListProducts", CatalogServiceServer.ListProducts),
		unary(CatalogServiceName, "GetProduct", CatalogServiceServer.GetProduct),
		unary(CatalogServiceName, "CreateProduct", CatalogServiceServer.CreateProduct),
		unary(CatalogServiceName, "UpdateProduct", CatalogServiceServer.UpdateProduct),
		unary(CatalogServiceName, "DeleteProduct", CatalogServiceServer.DeleteProduct),
		unary(CatalogServiceName, "ListCategories", CatalogServiceServer.ListCategories),
		unary(CatalogServiceName, "CreateCategory", CatalogServiceServer.CreateCategory),
		unary(CatalogServiceName, "ListUnits", CatalogServiceServer.ListUnits),
		unary(CatalogServiceName, "CreateUnit", CatalogServiceServer.CreateUnit),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coffeeshop/v1/catalog.json",
}

func RegisterCatalogServiceServer(s grpc.ServiceRegistrar, srv CatalogServiceServer) {
	s.RegisterService(&CatalogService_ServiceDesc, srv)
}

type CatalogServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCatalogServiceClient(cc grpc.ClientConnInterface) *CatalogServiceClient {
	return &CatalogServiceClient{cc: cc}
}

func (c *CatalogServiceClient) ListProducts(ctx context.Context, in *ListProductsRequest, opts ...grpc.CallOption) (*ListProductsResponse, error) {
	return invoke[ListProductsResponse](ctx, c.cc, CatalogServiceMethod("ListProducts"), in, opts)
}

func (c *CatalogServiceClient) GetProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, CatalogServiceMethod("GetProduct"), in, opts)
}

func (c *CatalogServiceClient) CreateProduct(ctx context.Context, in *ProductInput, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, CatalogServiceMethod("CreateProduct"), in, opts)
}

func (c *CatalogServiceClient) UpdateProduct(ctx context.Context, in *UpdateProductRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, CatalogServiceMethod("UpdateProduct"), in, opts)
}

func (c *CatalogServiceClient) DeleteProduct(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, CatalogServiceMethod("DeleteProduct"), in, opts)
}

func (c *CatalogServiceClient) ListCategories(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListCategoriesResponse, error) {
	return invoke[ListCategoriesResponse](ctx, c.cc, CatalogServiceMethod("ListCategories"), in, opts)
}

func (c *CatalogServiceClient) CreateCategory(ctx context.Context, in *NameRequest, opts ...grpc.CallOption) (*CategoryResponse, error) {
	return invoke[CategoryResponse](ctx, c.cc, CatalogServiceMethod("CreateCategory"), in, opts)
}

func (c *CatalogServiceClient) ListUnits(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListUnitsResponse, error) {
	return invoke[ListUnitsResponse](ctx, c.cc, CatalogServiceMethod("ListUnits"), in, opts)
}

func (c *CatalogServiceClient) CreateUnit(ctx context.Context, in *NameRequest, opts ...grpc.CallOption) (*UnitResponse, error) {
	return invoke[UnitResponse](ctx, c.cc, CatalogServiceMethod("CreateUnit"), in, opts)
}

// CalculatorServiceServer computes the profit of a sale and changes product prices.
type CalculatorServiceServer interface {
	CalculateProfit(context.Context, *CalculateProfitRequest) (*CalculateProfitResponse, error)
	ChangePrice(context.Context, *ChangePriceRequest) (*ProductResponse, error)
}

const CalculatorServiceName = pkg + "CalculatorService"

// CalculatorServiceMethod returns the full method name used by interceptors.
func CalculatorServiceMethod(method string) string { return "/" + CalculatorServiceName + "/" + method }

var CalculatorService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: CalculatorServiceName,
	HandlerType: (*CalculatorServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(CalculatorServiceName, "CalculateProfit", CalculatorServiceServer.CalculateProfit),
		unary(CalculatorServiceName, "ChangePrice", CalculatorServiceServer.ChangePrice),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coffeeshop/v1/calculator.json",
}

func RegisterCalculatorServiceServer(s grpc.ServiceRegistrar, srv CalculatorServiceServer) {
	s.RegisterService(&CalculatorService_ServiceDesc, srv)
}

type CalculatorServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewCalculatorServiceClient(cc grpc.ClientConnInterface) *CalculatorServiceClient {
	return &CalculatorServiceClient{cc: cc}
}

func (c *CalculatorServiceClient) CalculateProfit(ctx context.Context, in *CalculateProfitRequest, opts ...grpc.CallOption) (*CalculateProfitResponse, error) {
	return invoke[CalculateProfitResponse](ctx, c.cc, CalculatorServiceMethod("CalculateProfit"), in, opts)
}

func (c *CalculatorServiceClient) ChangePrice(ctx context.Context, in *ChangePriceRequest, opts ...grpc.CallOption) (*ProductResponse, error) {
	return invoke[ProductResponse](ctx, c.cc, CalculatorServiceMethod("ChangePrice"), in, opts)
}

// StaffServiceServer lists employees and schedules their shifts.
type StaffServiceServer interface {
	ListEmployees(context.Context, *Empty) (*ListEmployeesResponse, error)
	CreateEmployee(context.Context, *CreateEmployeeRequest) (*EmployeeResponse, error)
	SetEmployeeStatus(context.Context, *SetEmployeeStatusRequest) (*EmployeeResponse, error)
	EmployeeShifts(context.Context, *EmployeeShiftsRequest) (*EmployeeShiftsResponse, error)
	ScheduleShift(context.Context, *ScheduleShiftRequest) (*ShiftResponse, error)
	GetShift(context.Context, *GetShiftRequest) (*ShiftResponse, error)
	ListShifts(context.Context, *Empty) (*ListShiftsResponse, error)
	UpdateShift(context.Context, *UpdateShiftRequest) (*ShiftResponse, error)
	DeleteShift(context.Context, *IDRequest) (*Empty, error)
}

const StaffServiceName = pkg + "StaffService"

// StaffServiceMethod returns the full method name used by interceptors.
func StaffServiceMethod(method string) string { return "/" + StaffServiceName + "/" + method }

var StaffService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: StaffServiceName,
	HandlerType: (*StaffServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(StaffServiceName, "ListEmployees", StaffServiceServer.ListEmployees),
		unary(StaffServiceName, "CreateEmployee", StaffServiceServer.CreateEmployee),
		unary(StaffServiceName, "SetEmployeeStatus", StaffServiceServer.SetEmployeeStatus),
		unary(StaffServiceName, "EmployeeShifts", StaffServiceServer.EmployeeShifts),
		unary(StaffServiceName, "ScheduleShift", StaffServiceServer.ScheduleShift),
		unary(StaffServiceName, "GetShift", StaffServiceServer.GetShift),
		unary(StaffServiceName, "ListShifts", StaffServiceServer.ListShifts),
		unary(StaffServiceName, "UpdateShift", StaffServiceServer.UpdateShift),
		unary(StaffServiceName, "DeleteShift", StaffServiceServer.DeleteShift),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coffeeshop/v1/staff.json",
}

func RegisterStaffServiceServer(s grpc.ServiceRegistrar, srv StaffServiceServer) {
	s.RegisterService(&StaffService_ServiceDesc, srv)
}

type StaffServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewStaffServiceClient(cc grpc.ClientConnInterface) *StaffServiceClient {
	return &StaffServiceClient{cc: cc}
}

func (c *StaffServiceClient) ListEmployees(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListEmployeesResponse, error) {
	return invoke[ListEmployeesResponse](ctx, c.cc, StaffServiceMethod("ListEmployees"), in, opts)
}

func (c *StaffServiceClient) CreateEmployee(ctx context.Context, in *CreateEmployeeRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, StaffServiceMethod("CreateEmployee"), in, opts)
}

func (c *StaffServiceClient) SetEmployeeStatus(ctx context.Context, in *SetEmployeeStatusRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, StaffServiceMethod("SetEmployeeStatus"), in, opts)
}

func (c *StaffServiceClient) EmployeeShifts(ctx context.Context, in *EmployeeShiftsRequest, opts ...grpc.CallOption) (*EmployeeShiftsResponse, error) {
	return invoke[EmployeeShiftsResponse](ctx, c.cc, StaffServiceMethod("EmployeeShifts"), in, opts)
}

func (c *StaffServiceClient) ScheduleShift(ctx context.Context, in *ScheduleShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error) {
	return invoke[ShiftResponse](ctx, c.cc, StaffServiceMethod("ScheduleShift"), in, opts)
}

func (c *StaffServiceClient) GetShift(ctx context.Context, in *GetShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error) {
	return invoke[ShiftResponse](ctx, c.cc, StaffServiceMethod("GetShift"), in, opts)
}

func (c *StaffServiceClient) ListShifts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ListShiftsResponse, error) {
	return invoke[ListShiftsResponse](ctx, c.cc, StaffServiceMethod("ListShifts"), in, opts)
}

func (c *StaffServiceClient) UpdateShift(ctx context.Context, in *UpdateShiftRequest, opts ...grpc.CallOption) (*ShiftResponse, error) {
	return invoke[ShiftResponse](ctx, c.cc, StaffServiceMethod("UpdateShift"), in, opts)
}

func (c *StaffServiceClient) DeleteShift(ctx context.Context, in *IDRequest, opts ...grpc.CallOption) (*Empty, error) {
	return invoke[Empty](ctx, c.cc, StaffServiceMethod("DeleteShift"), in, opts)
}

// SettingsServiceServer holds fixed costs, spreadsheet exports and the caller's profile.
type SettingsServiceServer interface {
	GetFixedCosts(context.Context, *Empty) (*FixedCostsResponse, error)
	UpdateFixedCosts(context.Context, *UpdateFixedCostsRequest) (*FixedCostsResponse, error)
	ExportProducts(context.Context, *Empty) (*ExportResponse, error)
	ExportShifts(context.Context, *Empty) (*ExportResponse, error)
	GetProfile(context.Context, *Empty) (*EmployeeResponse, error)
	UpdateProfile(context.Context, *UpdateProfileRequest) (*EmployeeResponse, error)
	UpdateAvatar(context.Context, *UpdateAvatarRequest) (*EmployeeResponse, error)
}

const SettingsServiceName = pkg + "SettingsService"

// SettingsServiceMethod returns the full method name used by interceptors.
func SettingsServiceMethod(method string) string { return "/" + SettingsServiceName + "/" + method }

var SettingsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: SettingsServiceName,
	HandlerType: (*SettingsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unary(SettingsServiceName, "GetFixedCosts", SettingsServiceServer.GetFixedCosts),
		unary(SettingsServiceName, "UpdateFixedCosts", SettingsServiceServer.UpdateFixedCosts),
		unary(SettingsServiceName, "ExportProducts", SettingsServiceServer.ExportProducts),
		unary(SettingsServiceName, "ExportShifts", SettingsServiceServer.ExportShifts),
		unary(SettingsServiceName, "GetProfile", SettingsServiceServer.GetProfile),
		unary(SettingsServiceName, "UpdateProfile", SettingsServiceServer.UpdateProfile),
		unary(SettingsServiceName, "UpdateAvatar", SettingsServiceServer.UpdateAvatar),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "coffeeshop/v1/settings.json",
}

func RegisterSettingsServiceServer(s grpc.ServiceRegistrar, srv SettingsServiceServer) {
	s.RegisterService(&SettingsService_ServiceDesc, srv)
}

type SettingsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewSettingsServiceClient(cc grpc.ClientConnInterface) *SettingsServiceClient {
	return &SettingsServiceClient{cc: cc}
}

func (c *SettingsServiceClient) GetFixedCosts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*FixedCostsResponse, error) {
	return invoke[FixedCostsResponse](ctx, c.cc, SettingsServiceMethod("GetFixedCosts"), in, opts)
}

func (c *SettingsServiceClient) UpdateFixedCosts(ctx context.Context, in *UpdateFixedCostsRequest, opts ...grpc.CallOption) (*FixedCostsResponse, error) {
	return invoke[FixedCostsResponse](ctx, c.cc, SettingsServiceMethod("UpdateFixedCosts"), in, opts)
}

func (c *SettingsServiceClient) ExportProducts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c.cc, SettingsServiceMethod("ExportProducts"), in, opts)
}

func (c *SettingsServiceClient) ExportShifts(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*ExportResponse, error) {
	return invoke[ExportResponse](ctx, c.cc, SettingsServiceMethod("ExportShifts"), in, opts)
}

func (c *SettingsServiceClient) GetProfile(ctx context.Context, in *Empty, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, SettingsServiceMethod("GetProfile"), in, opts)
}

func (c *SettingsServiceClient) UpdateProfile(ctx context.Context, in *UpdateProfileRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, SettingsServiceMethod("UpdateProfile"), in, opts)
}

func (c *SettingsServiceClient) UpdateAvatar(ctx context.Context, in *UpdateAvatarRequest, opts ...grpc.CallOption) (*EmployeeResponse, error) {
	return invoke[EmployeeResponse](ctx, c.cc, SettingsServiceMethod("UpdateAvatar"), in, opts)
}
