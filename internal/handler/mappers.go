package handler

import (
	"cajacentral/internal/dto"
	"cajacentral/internal/model"
	"cajacentral/internal/service"
)

func usuarioResponse(u *model.Usuario) dto.UsuarioResponse {
	return dto.UsuarioResponse{ID: u.ID, Username: u.Username, Nombre: u.Nombre, Rol: u.Rol}
}

func empresaResponse(e *model.Empresa) dto.EmpresaResponse {
	return dto.EmpresaResponse{
		ID:        e.ID,
		Nombre:    e.Nombre,
		Activo:    e.Activo,
		CreatedAt: e.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func entidadResponse(e *model.Entidad) dto.EntidadResponse {
	resp := dto.EntidadResponse{
		ID:              e.ID,
		Nombre:          e.Nombre,
		Telefono:        e.Telefono,
		EsEmpleado:      e.EsEmpleado,
		EsCliente:       e.EsCliente,
		EsProveedor:     e.EsProveedor,
		PuedeOperarCaja: e.PuedeOperarCaja,
		Activo:          e.Activo,
	}
	for _, rel := range e.Empresas {
		r := dto.EmpresaRelacionResponse{
			EmpresaID:    rel.EmpresaID,
			TipoRelacion: rel.TipoRelacion,
			Activo:       rel.Activo,
		}
		if rel.Empresa != nil {
			r.Empresa = rel.Empresa.Nombre
		}
		resp.Empresas = append(resp.Empresas, r)
	}
	return resp
}

func cuentaResponse(c *model.Cuenta) dto.CuentaResponse {
	return dto.CuentaResponse{ID: c.ID, Tipo: c.Tipo, Nombre: c.Nombre, Saldo: c.Saldo, Activo: c.Activo}
}

func subcategoriaResponse(s *model.Subcategoria) dto.SubcategoriaResponse {
	return dto.SubcategoriaResponse{ID: s.ID, CategoriaID: s.CategoriaID, Nombre: s.Nombre, Activo: s.Activo}
}

func categoriaResponse(c *model.Categoria) dto.CategoriaResponse {
	resp := dto.CategoriaResponse{
		ID:          c.ID,
		Nombre:      c.Nombre,
		Descripcion: c.Descripcion,
		Activo:      c.Activo,
	}
	for i := range c.Subcategorias {
		resp.Subcategorias = append(resp.Subcategorias, subcategoriaResponse(&c.Subcategorias[i]))
	}
	return resp
}

func movimientoResponse(m *model.Movimiento) dto.MovimientoResponse {
	return dto.MovimientoResponse{
		ID:              m.ID,
		Tipo:            m.Tipo,
		Monto:           m.Monto,
		EsIngreso:       m.EsIngreso,
		EsTraspaso:      m.EsTraspaso,
		Fecha:           m.Fecha,
		CuentaOrigenID:  m.CuentaOrigenID,
		CuentaDestinoID: m.CuentaDestinoID,
		EmpresaID:       m.EmpresaID,
		CorteID:         m.CorteID,
		EntidadID:       m.EntidadID,
		EmpleadoID:      m.EmpleadoID,
		CategoriaID:     m.CategoriaID,
		SubcategoriaID:  m.SubcategoriaID,
		MetodoPago:      m.MetodoPago,
		Plataforma:      m.Plataforma,
		Descripcion:     m.Descripcion,
	}
}

func corteResponse(c *model.Corte) dto.CorteResponse {
	resp := dto.CorteResponse{
		ID:                 c.ID,
		EmpresaID:          c.EmpresaID,
		EmpleadoID:         c.EmpleadoID,
		Fecha:              c.Fecha,
		Sesion:             c.Sesion,
		VentaNeta:          c.VentaNeta,
		VentaEfectivo:      c.VentaEfectivo,
		VentaTarjeta:       c.VentaTarjeta,
		VentaCredito:       c.VentaCredito,
		VentaTransferencia: c.VentaTransferencia,
		Cortesias:          c.Cortesias,
		Cobranza:           c.Cobranza,
		RetiroParcial:      c.RetiroParcial,
		Gastos:             c.Gastos,
		Compras:            c.Compras,
		Prestamos:          c.Prestamos,
		OtrosRetiros:       c.OtrosRetiros,
		EfectivoEsperado:   c.EfectivoEsperado,
		EfectivoReal:       c.EfectivoReal,
		Diferencia:         c.Diferencia,
		Clasificacion:      service.CalcularCorte(c).Clasificacion,
		AdeudoGenerado:     c.AdeudoGenerado,
		Estado:             c.Estado,
		TotalMovimientos:   len(c.Movimientos),
	}
	if c.Empresa != nil {
		resp.Empresa = c.Empresa.Nombre
	}
	if c.Empleado != nil {
		resp.Empleado = c.Empleado.Nombre
	}
	return resp
}
